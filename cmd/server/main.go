// Package main implements the entry point for the TaskVault server,
// a task management API with soft-delete semantics backed by Postgres.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/taskvault/taskvault/internal/config"
	"github.com/taskvault/taskvault/internal/platform/logger"
)

// main parses flags and hands control to run, which owns the error path so
// every failure exits through a single log.Fatalf.
func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a migration command (up|down|status|version) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("taskvault: %v", err)
	}
}

// run loads configuration, sets up logging, and either executes a migration
// command or initializes and starts the server.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if migrateCmd != "" {
		return runMigrations(cfg, migrateCmd)
	}

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(context.Background())
}
