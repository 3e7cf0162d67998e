package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/photovault/photovault/internal/config"
	"github.com/photovault/photovault/internal/handler"
	"github.com/photovault/photovault/internal/metrics"
	"github.com/photovault/photovault/internal/middleware"
)

type routerDeps struct {
	cfg      *config.Config
	logger   *slog.Logger
	tokens   middleware.TokenValidator
	limiter  middleware.RateLimiter
	recorder metrics.Recorder
	tracer   trace.Tracer

	index   *handler.Handler
	health  *handler.HealthHandler
	metrics *handler.MetricsHandler
	auth    *handler.AuthHandler
	photos  *handler.PhotoHandler
	gallery *handler.GalleryHandler
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// RealIP first so every later layer sees the client address.
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Instrument(d.tracer, d.recorder))
	r.Use(middleware.Logger(d.logger))
	r.Use(middleware.Recoverer(d.logger))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = d.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:     d.cfg.IsDevelopment(),
		CrossOriginImages: len(corsCfg.AllowedOrigins) > 0,
	}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(d.cfg.MaxUploadRequestSize))

	r.Get("/", d.index.Index)
	r.Get("/health", d.health.Health)
	r.Get("/healthz", d.health.Healthz)
	r.Get("/readyz", d.health.Readyz)
	r.Get("/metrics", d.metrics.Metrics)

	authCfg := middleware.AuthConfig{
		Logger: d.logger,
		Tokens: d.tokens,
	}

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:        d.logger,
		Limiter:       d.limiter,
		Metrics:       d.recorder,
		Enabled:       d.cfg.RateLimitEnabled,
		AuthPerMinute: d.cfg.RateLimitAuthPerMinute,
		AuthBurst:     d.cfg.RateLimitAuthBurst,
		APIPerMinute:  d.cfg.RateLimitAPIPerMinute,
		APIBurst:      d.cfg.RateLimitAPIBurst,
	}

	r.Route("/api", func(r chi.Router) {
		// Anonymous credential endpoints, limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimitIP(rateLimitCfg))
			r.Post("/auth/signup", d.auth.Signup)
			r.Post("/auth/signin", d.auth.Signin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))
			r.Use(middleware.RateLimitUser(rateLimitCfg))

			r.Get("/auth/me", d.auth.Me)
			r.Get("/auth/profile-picture", d.auth.ProfilePicture)
			r.Put("/auth/profile", d.auth.UpdateProfile)

			r.Route("/photos", func(r chi.Router) {
				r.Get("/", d.photos.List)
				r.Post("/", d.photos.Create)
				r.Post("/bulk", d.photos.BulkCreate)
				r.Delete("/bulk", d.photos.BulkDelete)
				r.Get("/{id}", d.photos.Get)
				r.Put("/{id}", d.photos.Update)
				r.Delete("/{id}", d.photos.Delete)
				r.Get("/{id}/metadata", d.photos.Metadata)
				r.Get("/{id}/file", d.photos.Download)
			})

			r.Route("/galleries", func(r chi.Router) {
				r.Get("/", d.gallery.List)
				r.Post("/", d.gallery.Create)
				r.Get("/page", d.gallery.Page)
				r.Get("/dropdown", d.gallery.Dropdown)
				r.Post("/move-photos", d.gallery.MovePhotos)
				r.Get("/{id}", d.gallery.Get)
				r.Put("/{id}", d.gallery.Update)
				r.Delete("/{id}", d.gallery.Delete)
				r.Get("/{id}/preview", d.gallery.Preview)
			})
		})
	})

	r.NotFound(d.index.NotFound)
	r.MethodNotAllowed(d.index.MethodNotAllowed)

	return r
}
