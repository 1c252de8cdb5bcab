package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// pages maps every known location to the page rendered there.
// Anything else falls back to NotFoundPage.
var pages = map[string]func() app.UI{
	HomePath: func() app.UI { return &HomePage{} },
}

// IsRouted reports whether path has a registered page
func IsRouted(path string) bool {
	_, ok := pages[path]
	return ok
}

// resolvePage returns the page for path, or the 404 page when nothing matches
func resolvePage(path string) app.UI {
	if newPage, ok := pages[path]; ok {
		return newPage()
	}
	return &NotFoundPage{}
}

// App is the root component of the application
type App struct {
	app.Compo
	path string
}

// OnPreRender captures the requested path during server-side prerendering
func (a *App) OnPreRender(ctx app.Context) {
	a.path = ctx.Page().URL().Path
}

// OnNav is called when navigation occurs
func (a *App) OnNav(ctx app.Context) {
	a.path = ctx.Page().URL().Path
}

// Render renders the app
func (a *App) Render() app.UI {
	return app.Main().
		Class("app-container").
		Body(
			resolvePage(a.currentPath()),
		)
}

// currentPath falls back to the browser location until OnNav has run
func (a *App) currentPath() string {
	if a.path == "" && app.IsClient {
		return app.Window().URL().Path
	}
	return a.path
}
