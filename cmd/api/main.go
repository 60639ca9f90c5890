package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/realtyhub/marketplace-api/docs"
	"github.com/realtyhub/marketplace-api/internal/api"
	"github.com/realtyhub/marketplace-api/internal/core/service"
	"github.com/realtyhub/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/realtyhub/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/realtyhub/marketplace-api/internal/infrastructure/db/redis"
	"github.com/realtyhub/marketplace-api/internal/infrastructure/queue"
	"github.com/realtyhub/marketplace-api/pkg/logger"
)

// @title        Realty Marketplace API
// @version      1.0
// @description  Authorization core of the realty marketplace backend.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	roleRepo := mongodb.NewRoleRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	if err := roleRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("role indexes failed")
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	// --- Audit pipeline ---
	dispatcher := queue.NewDispatcher(0, auditRepo, log)
	dispatcher.Start(ctx)

	// --- Services ---
	limiter := redisdb.NewLoginLimiter(rdb, cfg.RateLimit.MaxLoginAttempts, cfg.RateLimit.LoginWindow)
	authService := service.NewAuthService(userRepo, roleRepo, limiter, dispatcher, cfg.JWTSecret, cfg.TokenTTL, log)
	roleService := service.NewRoleService(roleRepo, userRepo, dispatcher, log)
	userService := service.NewUserService(userRepo, log)

	if err := roleService.EnsureSystemRoles(ctx); err != nil {
		log.Fatal().Err(err).Msg("system role seeding failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, api.Services{
		Auth: authService,
		Role: roleService,
		User: userService,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
