package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maan-homes/accounts-api/internal/api"
	"github.com/maan-homes/accounts-api/internal/api/handler"
	"github.com/maan-homes/accounts-api/internal/core/service"
	"github.com/maan-homes/accounts-api/internal/infrastructure/config"
	mongodb "github.com/maan-homes/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/maan-homes/accounts-api/internal/infrastructure/db/redis"
	"github.com/maan-homes/accounts-api/internal/infrastructure/mail"
	"github.com/maan-homes/accounts-api/internal/infrastructure/queue"
	"github.com/maan-homes/accounts-api/pkg/logger"
)

const (
	sessionTTL     = 7 * 24 * time.Hour
	resetTTL       = 15 * time.Minute
	resetThrottle  = time.Minute
	mailWorkers    = 4
	shutdownWindow = 10 * time.Second
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongodb")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure user indexes")
	}
	if err := adminRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure admin indexes")
	}

	sender := mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.Sender)
	dispatcher := queue.NewDispatcher(mailWorkers, sender, log)

	dispatchCtx, stopDispatch := context.WithCancel(ctx)
	defer stopDispatch()
	dispatcher.Start(dispatchCtx)

	sessions := service.NewSessionTokenIssuer(cfg.JWTSecret, sessionTTL)
	resets := service.NewResetTokenIssuer(resetTTL)
	throttle := redisdb.NewResetThrottle(rdb, resetThrottle)

	userService := service.NewUserService(userRepo, sessions, resets, dispatcher, throttle, cfg.FrontendURL, log)
	adminService := service.NewAdminService(adminRepo, sessions, log)

	e := api.NewRouter(cfg, api.Deps{
		Users:    userService,
		Admins:   adminService,
		Sessions: sessions,
		Cookies:  handler.CookiePolicy{Production: cfg.Production(), TTL: sessions.TTL()},
		Mongo:    db,
		Redis:    rdb,
	}, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("accounts api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWindow)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	stopDispatch()
}
