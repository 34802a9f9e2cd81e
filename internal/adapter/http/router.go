package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/nexusbank/internal/adapter/http/handler"
	"github.com/iho/nexusbank/internal/adapter/http/middleware"
	"github.com/iho/nexusbank/internal/infrastructure/metrics"
	"github.com/iho/nexusbank/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	UserHandler        *handler.UserHandler
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	HealthHandler      *handler.HealthHandler

	// Optional
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Metrics          *metrics.Metrics
	MetricsHandler   http.Handler
	Logger           *zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	if cfg.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(*cfg.Logger).Wrap)
	}
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.RateLimiter != nil {
		if cfg.Metrics != nil && cfg.RateLimiter.OnLimit == nil {
			cfg.RateLimiter.OnLimit = cfg.Metrics.RateLimitHits.Inc
		}
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			if cfg.Metrics != nil {
				idempotencyMiddleware.OnReplay = cfg.Metrics.IdempotentHits.Inc
			}
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", cfg.UserHandler.Create)
			r.Get("/{id}", cfg.UserHandler.Get)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/user/{userId}", cfg.AccountHandler.ListByUser)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Post("/{id}/activate", cfg.AccountHandler.Activate)
			r.Post("/{id}/deactivate", cfg.AccountHandler.Deactivate)
			r.Get("/{id}/transactions", cfg.TransactionHandler.ListByAccount)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/{id}", cfg.TransactionHandler.Get)
			r.Post("/accounts/{id}/deposit", cfg.TransactionHandler.Deposit)
			r.Post("/accounts/{id}/withdraw", cfg.TransactionHandler.Withdraw)
			r.Post("/accounts/{id}/transfer", cfg.TransactionHandler.Transfer)
		})
	})

	return r
}
