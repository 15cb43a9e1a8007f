// Command api is the entry point for the agrix farm records API.
//
// Startup order: logger, configuration, MongoDB, Redis, index bootstrap,
// audit workers, router, HTTP server with graceful shutdown. No business
// logic lives here; all wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/betrybe/agrix/internal/api"
	"github.com/betrybe/agrix/internal/api/handler"
	"github.com/betrybe/agrix/internal/core/service"
	"github.com/betrybe/agrix/internal/infrastructure/config"
	mongodb "github.com/betrybe/agrix/internal/infrastructure/db/mongo"
	redisdb "github.com/betrybe/agrix/internal/infrastructure/db/redis"
	"github.com/betrybe/agrix/internal/infrastructure/queue"
	"github.com/betrybe/agrix/pkg/logger"
)

const probeTimeout = 3 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString("agrix: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	personRepo := mongodb.NewPersonRepository(db)
	if err := personRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}
	farmRepo := mongodb.NewFarmRepository(db)
	cropRepo := mongodb.NewCropRepository(db)
	fertilizerRepo := mongodb.NewFertilizerRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	// --- Auth + audit infrastructure ---
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	audit := queue.NewAuditDispatcher(0, auditRepo, log)
	audit.Start(ctx)

	// --- Router ---
	e := api.NewRouter(api.Dependencies{
		Persons:     personRepo,
		Farms:       farmRepo,
		Crops:       cropRepo,
		Fertilizers: fertilizerRepo,
		Tokens:      tokens,
		Limiter:     limiter,
		Audit:       audit,
		Logger:      log,
		Health: handler.HealthChecks{
			Database: func() error {
				pingCtx, cancel := context.WithTimeout(context.Background(), probeTimeout)
				defer cancel()
				return client.Ping(pingCtx, nil)
			},
			Cache: func() error {
				pingCtx, cancel := context.WithTimeout(context.Background(), probeTimeout)
				defer cancel()
				return rdb.Ping(pingCtx).Err()
			},
		},
	})

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
