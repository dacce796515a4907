package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/clientdesk/crm-api/internal/api"
	"github.com/clientdesk/crm-api/internal/infrastructure/config"
	"github.com/clientdesk/crm-api/internal/infrastructure/db/postgres"
	"github.com/clientdesk/crm-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is a local-development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "crm-api",
		Pretty:  cfg.Env == "development",
	})

	ctx := context.Background()

	// Startup is a strict sequence: pool, then migrations, then seeding,
	// then traffic. Any failure before the server starts is fatal.
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:      cfg.DB.DSN(),
		MaxConns: cfg.DB.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	migrator := postgres.NewMigrator(db, cfg.MigrationsDir, log)
	if err := migrator.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	if err := postgres.SeedDefaultAdmin(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(db, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("crm-api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
