package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zottaemp/timeclock-api/internal/api"
	"github.com/zottaemp/timeclock-api/internal/core/ports"
	"github.com/zottaemp/timeclock-api/internal/infrastructure/config"
	"github.com/zottaemp/timeclock-api/internal/infrastructure/db/file"
	mongodb "github.com/zottaemp/timeclock-api/internal/infrastructure/db/mongo"
	redisdb "github.com/zottaemp/timeclock-api/internal/infrastructure/db/redis"
	"github.com/zottaemp/timeclock-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB (user directory always lives here) ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	// --- Redis (pending admin credential update) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	if err := userRepo.SeedAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logg.Fatal().Err(err).Msg("failed to seed admin account")
	}

	// --- Work entry backend selection ---
	var entries ports.WorkEntryRepository
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		entries = file.NewEntryStore(cfg.EntriesFile, logg)
		logg.Info().Str("path", cfg.EntriesFile).Msg("using flat-file work entry store")
	default:
		entryRepo := mongodb.NewWorkEntryRepository(db)
		if err := entryRepo.EnsureIndexes(ctx); err != nil {
			logg.Fatal().Err(err).Msg("failed to ensure work entry indexes")
		}
		entries = entryRepo
	}

	e := api.NewRouter(api.Dependencies{
		Entries:   entries,
		Users:     userRepo,
		Pending:   redisdb.NewPendingUpdateStore(rdb),
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    logg,
	})

	go func() {
		logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("received interruption signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("error during server shutdown")
	}
	logg.Info().Msg("shutdown complete")
}
