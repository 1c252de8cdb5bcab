package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Static content of the 404 page
const (
	NotFoundCode    = "404"
	NotFoundTitle   = "Page Not Found"
	NotFoundMessage = "The page you're looking for doesn't exist or has been moved."
	HomeLinkLabel   = "Go Home"

	// HomePath is where the home link points
	HomePath = "/"
)

// Navigator moves the application to another location.
// In the browser it is backed by app.Context.Navigate.
type Navigator interface {
	Navigate(rawURL string)
}

// NavigatorFunc adapts a function to a Navigator
type NavigatorFunc func(rawURL string)

// Navigate calls f(rawURL)
func (f NavigatorFunc) Navigate(rawURL string) {
	f(rawURL)
}

// NotFoundPage displays a 404 error message
type NotFoundPage struct {
	app.Compo
}

// Render renders the 404 page
func (p *NotFoundPage) Render() app.UI {
	return app.Div().
		Class("not-found-page").
		Body(
			app.Div().
				Class("not-found-container").
				Body(
					app.H1().
						Class("not-found-title").
						Text(NotFoundCode),
					app.P().
						Class("not-found-subtitle").
						Text(NotFoundTitle),
					app.P().
						Class("not-found-message").
						Text(NotFoundMessage),
					app.A().
						Href(HomePath).
						Class("not-found-home-link").
						OnClick(p.onHomeClick).
						Text(HomeLinkLabel),
				),
		)
}

// onHomeClick hands the home link over to the go-app router
func (p *NotFoundPage) onHomeClick(ctx app.Context, e app.Event) {
	e.PreventDefault()
	p.goHome(NavigatorFunc(ctx.Navigate))
}

func (p *NotFoundPage) goHome(nav Navigator) {
	nav.Navigate(HomePath)
}
