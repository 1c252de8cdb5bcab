package webapp

import (
	_ "embed"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/drummonds/gonotfound/config"
)

// StylesheetPath is where the server exposes webapp.css
const StylesheetPath = "/webapp/webapp.css"

// Stylesheet is the content served at StylesheetPath
//
//go:embed webapp.css
var Stylesheet []byte

// catchAllRoute sends every location through App so unknown paths reach NotFoundPage
const catchAllRoute = "^/.*"

func newApp() app.Composer {
	return &App{}
}

// RegisterRoutes registers the client-side routes. It is shared by the
// server handler and the WASM entrypoint.
func RegisterRoutes() {
	app.Route(HomePath, newApp)
	app.RouteWithRegexp(catchAllRoute, newApp)
}

// Handler returns the go-app handler for the web app
func Handler(cfg config.FrontEndConfig) *app.Handler {
	RegisterRoutes()
	app.RunWhenOnBrowser()

	// wasm_exec.js and app.wasm are served from the web directory by Echo
	return &app.Handler{
		Name:        cfg.AppName,
		Title:       cfg.AppTitle,
		Description: cfg.AppDescription,
		Icon: app.Icon{
			Default: "/web/favicon.ico",
		},
		Styles: []string{
			StylesheetPath,
		},
		RawHeaders: []string{
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		},
	}
}
