package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	config "github.com/drummonds/gonotfound/config"
	engine "github.com/drummonds/gonotfound/engine"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
	engine.Logger = Logger
}

func main() {
	port := flag.String("port", "", "Port to run the server on (overrides config)")
	addr := flag.String("addr", "", "Address to bind (overrides config)")
	flag.Parse()

	frontendConfig, logger := config.SetupFrontend()
	injectGlobals(logger)

	if *port != "" {
		frontendConfig.ListenAddrPort = *port
	}
	if *addr != "" {
		frontendConfig.ListenAddrIP = *addr
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("   %s\n", frontendConfig.AppTitle)
	fmt.Println(strings.Repeat("=", 50))

	serverHandler := engine.NewServer(frontendConfig)

	if frontendConfig.ListenAddrIP == "" {
		Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	// Try to start server with automatic port increment if port is in use
	maxRetries := 5
	startPort := frontendConfig.ListenAddrPort
	var startErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		Logger.Info("Attempting to start server", "address", frontendConfig.Address(), "attempt", attempt+1)
		fmt.Printf("\nServer running on %s\n", frontendConfig.Address())

		startErr = serverHandler.Echo.Start(frontendConfig.Address())

		if startErr != nil && isAddressInUse(startErr) {
			Logger.Warn("Port already in use, trying next port",
				"port", frontendConfig.ListenAddrPort,
				"attempt", attempt+1,
				"max_attempts", maxRetries)

			next, err := nextPort(frontendConfig.ListenAddrPort)
			if err != nil {
				Logger.Error("Invalid port", "port", frontendConfig.ListenAddrPort, "error", err)
				os.Exit(1)
			}
			frontendConfig.ListenAddrPort = next

			if attempt == maxRetries-1 {
				Logger.Error("Failed to find available port after maximum retries",
					"start_port", startPort,
					"end_port", frontendConfig.ListenAddrPort,
					"max_retries", maxRetries)
				os.Exit(1)
			}
		} else if startErr != nil {
			Logger.Error("Failed to start server", "error", startErr)
			os.Exit(1)
		} else {
			break
		}
	}
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "address already in use")
}

// nextPort returns the port after port
func nextPort(port string) (string, error) {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("parse port %q: %w", port, err)
	}
	return strconv.Itoa(portNum + 1), nil
}
