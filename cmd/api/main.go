package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/greenhouse/plants-api/internal/api"
	mongodb "github.com/greenhouse/plants-api/internal/infrastructure/db/mongo"
	redisdb "github.com/greenhouse/plants-api/internal/infrastructure/db/redis"
	"github.com/greenhouse/plants-api/internal/pkg/config"
	"github.com/greenhouse/plants-api/pkg/logger"
)

// @title        Plants Store API
// @version      1.0
// @description  E-commerce backend for a plants catalog with JWT auth and role-based access.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "plants-api",
		Pretty:  cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewOrderRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("order indexes failed")
	}
	if err := mongodb.NewPlantRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("plant indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
