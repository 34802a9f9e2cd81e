package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/nexusbank/internal/adapter/http"
	"github.com/iho/nexusbank/internal/adapter/http/handler"
	"github.com/iho/nexusbank/internal/adapter/http/middleware"
	"github.com/iho/nexusbank/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/nexusbank/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/nexusbank/internal/adapter/repository/redis"
	"github.com/iho/nexusbank/internal/infrastructure/config"
	"github.com/iho/nexusbank/internal/infrastructure/logger"
	"github.com/iho/nexusbank/internal/infrastructure/metrics"
	"github.com/iho/nexusbank/internal/infrastructure/password"
	"github.com/iho/nexusbank/internal/infrastructure/postgres"
	"github.com/iho/nexusbank/internal/infrastructure/redis"
	"github.com/iho/nexusbank/internal/usecase"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitIdleTimeout     = 10 * time.Minute
	accountCacheTTL          = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := buildApp(ctx, cfg, appLogger, registry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}
	defer a.Close()

	if a.rateLimiter != nil {
		go a.rateLimiter.RunCleanup(ctx, rateLimitCleanupInterval, rateLimitIdleTimeout)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      a.handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("storage", cfg.StorageDriver).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// app is the wired service: the HTTP handler plus the resources it owns.
type app struct {
	handler     http.Handler
	rateLimiter *middleware.RateLimiter
	closers     []func()
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// ports groups the storage implementations the use cases depend on.
type ports struct {
	users interface {
		usecase.LoadUserPort
		usecase.SaveUserPort
	}
	accountLoader usecase.LoadAccountPort
	accountSaver  usecase.SaveAccountPort
	transactions  interface {
		usecase.LoadTransactionPort
		usecase.SaveTransactionPort
	}
	txManager usecase.TransactionManager
}

func buildApp(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger, registry *prometheus.Registry) (*app, error) {
	a := &app{}
	health := handler.NewHealthHandler()

	var p ports
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		p = ports{users: store, accountLoader: store, accountSaver: store, transactions: store}
		health.WithCheck("storage", store)
		log.Warn().Msg("using in-memory storage, data is lost on restart")

	case config.StoragePostgres:
		if cfg.MigrateOnStart {
			if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
				return nil, fmt.Errorf("run migrations: %w", err)
			}
		}

		pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
			ConnectRetries: cfg.DatabaseRetries,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		log.Info().Msg("connected to postgres")

		accounts := postgresRepo.NewAccountRepository(pool)
		p = ports{
			users:         postgresRepo.NewUserRepository(pool),
			accountLoader: accounts,
			accountSaver:  accounts,
			transactions:  postgresRepo.NewTransactionRepository(pool),
			txManager:     postgresRepo.NewTxManager(pool, postgresRepo.NewRetrier().WithMaxRetries(cfg.DatabaseRetries)),
		}
		health.WithCheck("postgres", pool)

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	var idempotencyStore usecase.IdempotencyStore
	accountReader, accountWriter := p.accountLoader, p.accountSaver
	if cfg.RedisEnabled {
		client, err := redis.NewClient(ctx, redis.Options{URL: cfg.RedisURL})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.closers = append(a.closers, func() { _ = client.Close() })
		log.Info().Msg("connected to redis")

		idempotencyStore = redisRepo.NewIdempotencyStore(client)
		cache := redisRepo.NewAccountCache(client, p.accountLoader, p.accountSaver, accountCacheTTL)
		accountReader, accountWriter = cache, cache
		health.WithCheck("redis", handler.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}))
	}

	idGen, err := postgresRepo.NewIDGenerator(cfg.IDFormat)
	if err != nil {
		a.Close()
		return nil, err
	}

	m := metrics.New(registry)

	// Money movements read accounts from storage under the row lock and
	// write through the cache so every balance change evicts the entry.
	userUC := usecase.NewUserUseCase(p.users, p.users, password.NewBcryptHasher(cfg.BcryptCost), idGen, m)
	accountUC := usecase.NewAccountUseCase(p.users, accountReader, accountWriter, idGen, cfg.DefaultCurrency, m)
	transactionUC := usecase.NewTransactionUseCase(p.txManager, p.accountLoader, accountWriter, p.transactions, p.transactions, idGen, m)

	routerCfg := httpAdapter.RouterConfig{
		UserHandler:        handler.NewUserHandler(userUC),
		AccountHandler:     handler.NewAccountHandler(accountUC),
		TransactionHandler: handler.NewTransactionHandler(transactionUC),
		HealthHandler:      health,
		IdempotencyStore:   idempotencyStore,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		Metrics:            m,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Logger:             &appLogger,
	}
	if cfg.RateLimitRPS > 0 {
		a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		routerCfg.RateLimiter = a.rateLimiter
	}

	a.handler = httpAdapter.NewRouter(routerCfg)
	return a, nil
}
