// Command server runs the Mikan portfolio backend API.
//
// @title           Mikan Portfolio API
// @version         1.0
// @description     REST backend for the Mikan portfolio/agency site: auth, careers, projects, uploads.
// @BasePath        /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/mikan-studio/portfolio-api/internal/api"
	"github.com/mikan-studio/portfolio-api/internal/core/ports"
	"github.com/mikan-studio/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/mikan-studio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mikan-studio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/mikan-studio/portfolio-api/internal/infrastructure/mail"
	"github.com/mikan-studio/portfolio-api/internal/infrastructure/queue"
	"github.com/mikan-studio/portfolio-api/internal/infrastructure/storage"
	"github.com/mikan-studio/portfolio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger options depend on config; this failure predates it.
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb unreachable")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unreachable")
	}
	defer func() { _ = rdb.Close() }()

	blobs, err := storage.New(ctx, storage.Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure blob store")
	}

	cleanup := queue.NewCleanupDispatcher(0, blobs, log)
	cleanup.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Blobs:    blobs,
		Notifier: newNotifier(cfg, log),
		Cleanup:  cleanup,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

// newNotifier picks SMTP when a host is configured and falls back to the
// console notifier otherwise.
func newNotifier(cfg *config.Config, log zerolog.Logger) ports.Notifier {
	if cfg.SMTP.Host == "" {
		log.Warn().Msg("SMTP not configured, application notifications go to the log")
		return mail.NewConsole(log)
	}

	notifier, err := mail.NewSMTP(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure smtp notifier")
	}
	return notifier
}
