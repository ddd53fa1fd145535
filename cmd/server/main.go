package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusops/student-registry/internal/api"
	"github.com/campusops/student-registry/internal/core/domain"
	"github.com/campusops/student-registry/internal/core/service"
	"github.com/campusops/student-registry/internal/infrastructure/config"
	"github.com/campusops/student-registry/internal/infrastructure/db/sqlite"
	"github.com/campusops/student-registry/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	seeder := service.NewSeeder(sqlite.NewUserRepository(db), log)
	if err := seeder.Seed(ctx, cfg.Seed.AdminUser, cfg.Seed.AdminPass, domain.Role(cfg.Seed.AdminRole)); err != nil {
		log.Fatal().Err(err).Msg("failed to seed accounts")
	}

	e := api.NewRouter(db, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
