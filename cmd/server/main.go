package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thevittavardhan/backend/internal/api"
	"github.com/thevittavardhan/backend/internal/core/service"
	mongodb "github.com/thevittavardhan/backend/internal/infrastructure/db/mongo"
	redisdb "github.com/thevittavardhan/backend/internal/infrastructure/db/redis"
	"github.com/thevittavardhan/backend/internal/infrastructure/mail"
	"github.com/thevittavardhan/backend/internal/infrastructure/queue"
	"github.com/thevittavardhan/backend/internal/pkg/config"
	"github.com/thevittavardhan/backend/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting server")

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes")
	}
	contactRepo := mongodb.NewContactRepository(db)
	careerRepo := mongodb.NewCareerRepository(db)
	contentRepo := mongodb.NewContentRepository(db)

	// --- Notification pipeline ---
	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		Timeout:  cfg.SMTP.Timeout,
	})
	dispatcher := queue.NewDispatcher(cfg.SMTP.Workers, mailer, log)
	dispatcher.Start(ctx)

	notifier := mail.NewNotifier(mail.Routes{
		Company: cfg.Mail.CompanyEmail,
		Support: cfg.Mail.SupportEmail,
		HR:      cfg.Mail.HREmail,
		Help:    cfg.Mail.HelpEmail,
	}, dispatcher)

	// --- Services ---
	tokens := service.NewTokenService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokens, log)
	submissionService := service.NewSubmissionService(contactRepo, careerRepo, notifier, log)
	adminService := service.NewAdminService(contactRepo, careerRepo, log)

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap")
	}

	limiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)

	e := api.NewRouter(api.RouterDeps{
		Auth:        authService,
		Submissions: submissionService,
		Admin:       adminService,
		Content:     contentRepo,
		Tokens:      tokens,
		Limiter:     limiter,
		Mongo:       db,
		Redis:       rdb,
		Log:         log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	log.Info().Msg("server stopped")
}
