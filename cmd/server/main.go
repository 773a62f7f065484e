// Package main implements the entry point for the KalaMela API server,
// the directory where users discover artists by category, location and
// rating.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/kalamela/kalamela-api/internal/config"
	"github.com/kalamela/kalamela-api/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the stores and
// services, and runs the HTTP server until interrupted.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger), nil
}
