package engine

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/drummonds/gonotfound/webapp"
)

// appResources are generated by the go-app handler and served as-is
var appResources = []string{
	"/app.js",
	"/app.css",
	"/app-worker.js",
	"/manifest.webmanifest",
}

// AddRoutes registers static assets, go-app resources and the page fallback
func (serverHandler *ServerHandler) AddRoutes() {
	e := serverHandler.Echo

	for _, resource := range appResources {
		e.GET(resource, echo.WrapHandler(serverHandler.App))
	}

	e.GET("/wasm_exec.js", func(c echo.Context) error {
		return c.File(filepath.Join(serverHandler.Config.WebDir, "wasm_exec.js"))
	})
	e.Static("/web", serverHandler.Config.WebDir)

	e.GET(webapp.StylesheetPath, func(c echo.Context) error {
		return c.Blob(http.StatusOK, "text/css; charset=utf-8", webapp.Stylesheet)
	})

	// Serve go-app handler for all other routes (must be last)
	e.Match([]string{http.MethodGet, http.MethodHead}, "/*", serverHandler.ServePage)
}

// ServePage serves the go-app page. Paths without a registered page are
// answered with 404 and the client mounts the not found page.
func (serverHandler *ServerHandler) ServePage(c echo.Context) error {
	path := c.Request().URL.Path

	var w http.ResponseWriter = c.Response()
	if !webapp.IsRouted(path) {
		Logger.Debug("No page registered, serving fallback", "path", path)
		w = &notFoundWriter{ResponseWriter: w}
	}

	serverHandler.App.ServeHTTP(w, c.Request())
	return nil
}
