package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/event-catering/internal/audit"
	"github.com/BruksfildServices01/event-catering/internal/config"
	dbpkg "github.com/BruksfildServices01/event-catering/internal/db"
	"github.com/BruksfildServices01/event-catering/internal/mail"
	"github.com/BruksfildServices01/event-catering/internal/oauth"
	"github.com/BruksfildServices01/event-catering/internal/ratelimit"
	"github.com/BruksfildServices01/event-catering/internal/routes"
	"github.com/BruksfildServices01/event-catering/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	deps := routes.Deps{
		Config: cfg,
		Repos:  routes.GormRepositories(db),
		Audit:  auditDispatcher,
		Mailer: newMailer(cfg, logger),
		Ping:   dbpkg.Ping(db),
		Logger: logger,
	}

	if cfg.S3Enabled() {
		store, err := storage.NewS3Store(cfg)
		if err != nil {
			logger.Error("object storage", "error", err)
			os.Exit(1)
		}
		deps.Store = store
	} else {
		logger.Warn("S3_BUCKET not set, image uploads are disabled")
	}

	if cfg.GoogleEnabled() {
		deps.Google = oauth.NewGoogle(cfg)
	}

	if cfg.RedisEnabled() {
		client, err := ratelimit.NewRedisClient(cfg)
		if err != nil {
			logger.Error("redis unavailable", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		deps.Counter = ratelimit.NewRedisCounter(client)
	} else {
		deps.Counter = ratelimit.NewMemoryCounter()
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	auditDispatcher.Close()
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func newMailer(cfg *config.Config, logger *slog.Logger) mail.Sender {
	if !cfg.SMTPEnabled() {
		logger.Warn("SMTP_HOST not set, verification emails are only logged")
		return mail.NewLogSender(logger)
	}
	return mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
}
