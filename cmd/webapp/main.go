//go:build js && wasm
// +build js,wasm

package main

import (
	"github.com/drummonds/gonotfound/webapp"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

func main() {
	// Every location mounts App; unknown ones render NotFoundPage
	webapp.RegisterRoutes()

	// This main function is for the WASM build only
	// It initializes the go-app when running in the browser
	app.RunWhenOnBrowser()
}
