package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// FrontEndConfig stores all of the frontend server settings
type FrontEndConfig struct {
	ListenAddrIP   string
	ListenAddrPort string
	AppName        string
	AppTitle       string
	AppDescription string
	WebDir         string // directory holding app.wasm and wasm_exec.js
}

// Address returns the host:port the server listens on
func (c FrontEndConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.ListenAddrIP, c.ListenAddrPort)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// SetupFrontend loads configuration and returns FrontEndConfig and Logger
func SetupFrontend() (FrontEndConfig, *slog.Logger) {
	// Load .env files (silently ignore if they don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")
	_ = godotenv.Load("frontend.env")

	logger := setupLogging()
	Logger = logger

	frontendConfig := loadFrontEndConfig()

	logger.Info("Frontend configuration loaded",
		"address", frontendConfig.Address(),
		"appName", frontendConfig.AppName,
		"webDir", frontendConfig.WebDir)

	return frontendConfig, logger
}

// loadFrontEndConfig reads the frontend settings from the environment
func loadFrontEndConfig() FrontEndConfig {
	frontendConfig := FrontEndConfig{}

	frontendConfig.ListenAddrIP = getEnv("SERVER_ADDR", "")
	frontendConfig.ListenAddrPort = strconv.Itoa(getEnvInt("SERVER_PORT", 3000))

	frontendConfig.AppName = getEnv("APP_NAME", "goapp")
	frontendConfig.AppTitle = getEnv("APP_TITLE", frontendConfig.AppName)
	frontendConfig.AppDescription = getEnv("APP_DESCRIPTION", "A go-app web application")

	frontendConfig.WebDir = filepath.ToSlash(getEnv("WEB_DIR", "web"))

	return frontendConfig
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	logLevel := getEnv("LOG_LEVEL", "debug")
	var level slog.Level

	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelDebug
	}

	handlerOptions := &slog.HandlerOptions{
		Level:     level,
		AddSource: getEnvBool("LOG_SOURCE", false),
	}

	logOutput := getEnv("LOG_OUTPUT", "stdout")
	var logWriter io.Writer

	if logOutput == "stdout" {
		logWriter = os.Stdout
	} else {
		logPath, err := filepath.Abs(filepath.ToSlash(getEnv("LOG_FILE", "frontend.log")))
		if err != nil {
			fmt.Printf("Error creating log file path: %v\n", err)
			logWriter = os.Stdout
		} else {
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				fmt.Printf("Failed to open log file: %v\n", err)
				logWriter = os.Stdout
			} else {
				logWriter = logFile
				fmt.Println("Logging to file: ", logPath)
			}
		}
	}

	handler := slog.NewTextHandler(logWriter, handlerOptions)
	return slog.New(handler)
}
