package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"

	config "github.com/drummonds/gonotfound/config"
	engine "github.com/drummonds/gonotfound/engine"
	"github.com/drummonds/gonotfound/webapp"
)

// getBrowser finds an available Chrome/Chromium for testing
func getBrowser() (string, error) {
	browsers := []string{"chromium", "chromium-browser", "google-chrome", "chrome"}
	for _, browser := range browsers {
		if path, err := exec.LookPath(browser); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no suitable browser found")
}

func newTestFrontend(t *testing.T) *httptest.Server {
	t.Helper()

	injectGlobals(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	serverHandler := engine.NewServer(config.FrontEndConfig{
		AppName:        "goapp",
		AppTitle:       "Go App",
		AppDescription: "browser test",
		WebDir:         t.TempDir(),
	})

	server := httptest.NewServer(serverHandler.Echo)
	t.Cleanup(server.Close)
	return server
}

// TestNotFoundPageInBrowser loads the server-side 404 page in a headless
// browser and follows its home link
func TestNotFoundPageInBrowser(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	browserPath, err := getBrowser()
	if err != nil {
		t.Skip("No Chrome/Chromium browser found, skipping chromedp test")
	}
	t.Logf("Using browser: %s", browserPath)

	server := newTestFrontend(t)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(browserPath),
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancel()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var pageTitle, bodyText, location string

	err = chromedp.Run(ctx,
		chromedp.Navigate(server.URL+"/web/nonexistent"),
		chromedp.WaitVisible(".not-found-home-link", chromedp.ByQuery),
		chromedp.Title(&pageTitle),
		chromedp.Text("body", &bodyText, chromedp.ByQuery),
		chromedp.Click(".not-found-home-link", chromedp.ByQuery),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.Location(&location),
	)
	if err != nil {
		t.Fatalf("Failed to run browser actions: %v", err)
	}

	if !strings.Contains(pageTitle, webapp.NotFoundCode) {
		t.Errorf("page title = %q, want it to contain %q", pageTitle, webapp.NotFoundCode)
	}
	for _, want := range []string{webapp.NotFoundCode, webapp.NotFoundTitle, webapp.NotFoundMessage, webapp.HomeLinkLabel} {
		if !strings.Contains(bodyText, want) {
			t.Errorf("page text is missing %q:\n%s", want, bodyText)
		}
	}

	u, err := url.Parse(location)
	if err != nil {
		t.Fatalf("Failed to parse location %q: %v", location, err)
	}
	if u.Path != webapp.HomePath {
		t.Errorf("location after clicking %q = %q, want %q", webapp.HomeLinkLabel, u.Path, webapp.HomePath)
	}
}

func TestIsAddressInUse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "in use", err: errors.New("listen tcp :3000: bind: address already in use"), want: true},
		{name: "other", err: errors.New("permission denied"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAddressInUse(tt.err); got != tt.want {
				t.Errorf("isAddressInUse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextPort(t *testing.T) {
	got, err := nextPort("3000")
	if err != nil {
		t.Fatalf("nextPort returned error: %v", err)
	}
	if got != "3001" {
		t.Errorf("nextPort(3000) = %q, want %q", got, "3001")
	}

	if _, err := nextPort("http"); err == nil {
		t.Error("expected an error for a non numeric port")
	}
}
