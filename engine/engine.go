package engine

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"

	"github.com/drummonds/gonotfound/config"
	"github.com/drummonds/gonotfound/webapp"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Echo   *echo.Echo
	App    http.Handler // go-app page and resource handler
	Config config.FrontEndConfig
}

// NewServer builds the Echo instance with middleware, error handling and routes
func NewServer(cfg config.FrontEndConfig) *ServerHandler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	serverHandler := &ServerHandler{
		Echo:   e,
		App:    webapp.Handler(cfg),
		Config: cfg,
	}

	e.HTTPErrorHandler = serverHandler.handleError

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: newRequestID,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			Logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("requestID", v.RequestID),
			)
			return nil
		},
	}))

	serverHandler.AddRoutes()
	return serverHandler
}

// newRequestID returns a ULID so request IDs sort by arrival time
func newRequestID() string {
	return ulid.Make().String()
}

// handleError answers 404s with the not found page, or JSON for API clients.
// Page locations never get here: ServePage answers them with the go-app page.
func (serverHandler *ServerHandler) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code != http.StatusNotFound {
		serverHandler.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	path := c.Request().URL.Path
	Logger.Debug("Serving not found response", "path", path)

	if wantsJSON(c.Request()) {
		if err := c.JSON(http.StatusNotFound, map[string]string{
			"error":   "Not Found",
			"message": webapp.NotFoundMessage,
			"path":    path,
		}); err != nil {
			Logger.Error("Failed to write not found response", "path", path, "error", err)
		}
		return
	}

	if err := c.HTMLBlob(http.StatusNotFound, webapp.NotFoundDocument(serverHandler.Config.AppTitle)); err != nil {
		Logger.Error("Failed to write not found page", "path", path, "error", err)
	}
}

// wantsJSON reports whether the Accept header lists application/json
// with a non-zero quality
func wantsJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get(echo.HeaderAccept), ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil || mediaType != echo.MIMEApplicationJSON {
			continue
		}
		if q, ok := params["q"]; ok {
			if quality, err := strconv.ParseFloat(q, 64); err != nil || quality <= 0 {
				continue
			}
		}
		return true
	}
	return false
}

// notFoundWriter turns a successful response into a 404 while keeping the body.
// The go-app page still loads so the client router can mount the 404 page.
type notFoundWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *notFoundWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if code == http.StatusOK {
		code = http.StatusNotFound
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *notFoundWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
