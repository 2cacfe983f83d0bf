// Package main implements the entry point for the taskdeck API server,
// a token-protected task management backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run database migrations (up|down) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run loads configuration, wires dependencies, and either executes a
// migration command or starts the HTTP server.
func run(migrateCmd string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	logg.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	switch migrateCmd {
	case "":
		// No migration requested; fall through to serving.
	case "up":
		logg.Info("applying migrations")
		return postgres.MigrateUp(ctx, db)
	case "down":
		logg.Info("rolling back last migration")
		return postgres.MigrateDown(ctx, db)
	default:
		return fmt.Errorf("unknown migrate command %q (want up or down)", migrateCmd)
	}

	app, err := newApplication(cfg, logg, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
