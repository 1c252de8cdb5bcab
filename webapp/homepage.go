package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HomePage is the landing page the 404 page links back to
type HomePage struct {
	app.Compo
}

// Render renders the home page
func (h *HomePage) Render() app.UI {
	return app.Div().
		Class("home-page").
		Body(
			app.H1().Class("home-title").Text("Home"),
			app.P().Class("home-message").Text("Welcome back."),
		)
}
