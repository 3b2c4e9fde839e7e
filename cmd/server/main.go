// Package main is the entry point for the fin-ledger API server.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kaan-t/go-fin-ledger/internal/api/middleware"
	v1 "github.com/kaan-t/go-fin-ledger/internal/api/v1"
	"github.com/kaan-t/go-fin-ledger/internal/auth"
	"github.com/kaan-t/go-fin-ledger/internal/config"
	"github.com/kaan-t/go-fin-ledger/internal/repository"
	"github.com/kaan-t/go-fin-ledger/internal/service"
	"github.com/kaan-t/go-fin-ledger/internal/utils"
)

const serviceName = "go-fin-ledger"

func main() {
	cfg := config.Load()

	// Initialize structured logger
	utils.InitLogger(cfg.Environment, serviceName)

	// Initialize metrics collector
	metricsCollector := utils.NewMetricsCollector()

	// Initialize distributed tracing when an OTLP endpoint is configured
	if cfg.OTLPEndpoint != "" {
		shutdownTracer, err := utils.InitTracer(context.Background(), serviceName, "1.0.0", cfg.OTLPEndpoint)
		if err != nil {
			utils.Error("failed to initialize tracer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdownTracer()
	}

	// Initialize repositories: Postgres when DB_URL is provided, otherwise
	// the in-memory stores.
	var repos *repository.Repositories
	var db *repository.DB
	if cfg.DBUrl != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var err error
		db, err = repository.Connect(ctx, cfg.DBUrl)
		if err != nil {
			utils.Error("failed to connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()

		repos = &repository.Repositories{
			Users:      repository.NewUsersRepo(db.Pool),
			Statements: repository.NewStatementsRepo(db.Pool),
		}
	} else {
		utils.Warn("no database URL provided, using in-memory stores")
		repos = &repository.Repositories{
			Users:      repository.NewMemoryUsersRepo(),
			Statements: repository.NewMemoryStatementsRepo(),
		}
	}

	// Initialize Redis connection when configured
	var redisClient *repository.RedisClient
	if cfg.RedisAddr != "" {
		var err error
		redisClient, err = repository.NewRedisClient(repository.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.GetRedisDBInt(),
		})
		if err != nil {
			utils.Warn("failed to connect to Redis, running without cache", slog.String("error", err.Error()))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, serviceName)

	// Initialize services
	userSvc := service.NewUserService(repos)
	statementSvc := service.NewStatementService(repos)
	statementSvc.SetMetricsCollector(metricsCollector)

	services := &service.Services{
		Auth:      service.NewAuthService(repos, jwtManager),
		User:      userSvc,
		Statement: statementSvc,
		Balance:   service.NewBalanceService(repos),
	}

	if redisClient != nil {
		cacheService := service.NewCacheService(redisClient)
		services.Cache = cacheService
		userSvc.SetCacheService(cacheService)
		statementSvc.SetCacheService(cacheService)
	}

	// Create HTTP server
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Basic metrics endpoint (JSON format)
	mux.HandleFunc("/api/v1/metrics/basic", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(metricsCollector.GetMetrics())
	})

	// Register v1 API routes
	apiRouter := v1.NewRouter(services, jwtManager)
	apiRouter.RegisterRoutes(mux)

	// Rate limiting sits innermost so throttled requests still get logged
	// and counted.
	handler := middleware.RateLimitMiddleware(services.Cache, 100, time.Minute)(mux)

	server := &http.Server{
		Addr: cfg.GetAddr(),
		Handler: middleware.LoggingMiddleware(
			middleware.TracingMiddleware(serviceName)(
				middleware.MetricsMiddleware(metricsCollector)(handler),
			),
		),
	}

	// Channel to listen for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		utils.Info("server starting",
			slog.String("addr", cfg.GetAddr()),
			slog.String("env", cfg.Environment),
		)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Error("server failed to start", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	<-quit
	utils.Info("shutting down server")

	// Create context with 5 second timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		utils.Error("server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	utils.Info("server stopped gracefully")
}
