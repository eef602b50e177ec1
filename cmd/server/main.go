// Package main implements the entry point for the World Happiness
// rankings API server, which serves read-only ranking data and a
// bearer-token-guarded user account subsystem.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/worldhappiness/api/internal/config"
	"github.com/worldhappiness/api/internal/platform/logger"
	"github.com/worldhappiness/api/internal/redact"
)

func main() {
	if err := run(); err != nil {
		// Startup errors can carry the database URL; scrub before
		// printing.
		log.Fatalf("Failed to start server: %v", redact.Error(err))
	}
}

// run loads configuration, wires the application together and serves
// until shutdown. Split out of main so initialization errors surface as
// return values.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
