// Package main is the entrypoint for the Photovault API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"

	"github.com/photovault/photovault/internal/auth"
	"github.com/photovault/photovault/internal/cache"
	"github.com/photovault/photovault/internal/config"
	"github.com/photovault/photovault/internal/handler"
	"github.com/photovault/photovault/internal/metrics"
	"github.com/photovault/photovault/internal/repository"
	"github.com/photovault/photovault/internal/server"
	"github.com/photovault/photovault/internal/service"
	"github.com/photovault/photovault/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    cfg.OTelServiceName,
		ServiceVersion: handler.Version,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		Stdout:         cfg.OTelStdout,
	})
	if err != nil {
		logger.Error("failed to initialize telemetry", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger = slog.New(telemetry.NewLogHandler(logger.Handler(), global.GetLoggerProvider(), "photovault", parseLogLevel(cfg.LogLevel)))
	slog.SetDefault(logger)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	var cacheClient *cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.New(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error(
				"failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			os.Exit(1)
		}
		logger.Info("connected to Redis")
	} else {
		logger.Warn("REDIS_URL not set, rate limiting disabled")
	}

	inMemory := metrics.NewInMemory()
	otelRecorder, err := metrics.NewOTel(otel.Meter("photovault"))
	if err != nil {
		logger.Error("failed to create metric instruments", slog.String("error", err.Error()))
		os.Exit(1)
	}
	recorder := metrics.Multi{inMemory, otelRecorder}

	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiration)

	userService := service.NewUserService(repo, hasher, tokens, cfg.MaxPhotoSize, recorder)
	photoService := service.NewPhotoService(repo, cfg.MaxPhotoSize, recorder)
	galleryService := service.NewGalleryService(repo, recorder)

	deps := routerDeps{
		cfg:      cfg,
		logger:   logger,
		tokens:   tokens,
		recorder: recorder,
		tracer:   otel.Tracer("photovault/http"),
		index:    handler.New(),
		health:   newHealthHandler(repo, cacheClient),
		metrics:  handler.NewMetricsHandler(inMemory),
		auth:     handler.NewAuthHandler(userService, logger, cfg.MaxUploadRequestSize),
		photos:   handler.NewPhotoHandler(photoService, logger, cfg.MaxUploadRequestSize),
		gallery:  handler.NewGalleryHandler(galleryService, logger),
	}
	if cacheClient != nil {
		deps.limiter = cacheClient
	}

	srv := server.New(setupRouter(deps), server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	srv.OnShutdown("telemetry", shutdownTelemetry)
	srv.OnShutdown("postgres", func(context.Context) error {
		repo.Close()
		return nil
	})
	if cacheClient != nil {
		srv.OnShutdown("redis", func(context.Context) error {
			return cacheClient.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"rate_limit", cfg.RateLimitEnabled && cacheClient != nil,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// newHealthHandler avoids handing a typed nil cache to the health checks.
func newHealthHandler(repo *repository.Repository, cacheClient *cache.Cache) *handler.HealthHandler {
	if cacheClient == nil {
		return handler.NewHealthHandler(repo, nil)
	}
	return handler.NewHealthHandler(repo, cacheClient)
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With(slog.String("service", cfg.OTelServiceName))
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
