package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/viktorgkw/AuthTemplate/internal/api"
	"github.com/viktorgkw/AuthTemplate/internal/core/domain"
	"github.com/viktorgkw/AuthTemplate/internal/infrastructure/config"
	mongostore "github.com/viktorgkw/AuthTemplate/internal/infrastructure/db/mongo"
	redisstore "github.com/viktorgkw/AuthTemplate/internal/infrastructure/db/redis"
	"github.com/viktorgkw/AuthTemplate/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        AuthTemplate Identity API
// @version      1.0
// @description  Identity service exposing account registration and credential login, issuing signed bearer tokens.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Example: Bearer [TOKEN]
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongostore.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := mongostore.EnsureRoles(ctx, db, domain.Roles); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: cfg.Redis.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	e, err := api.NewRouter(db, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("identity service started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
