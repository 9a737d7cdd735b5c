package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wms-platform/sla-service/internal/api/handlers"
	"github.com/wms-platform/sla-service/internal/application"
	"github.com/wms-platform/sla-service/internal/config"
	"github.com/wms-platform/sla-service/internal/infrastructure/memory"
	"github.com/wms-platform/sla-service/pkg/logging"
	"github.com/wms-platform/sla-service/pkg/metrics"
	"github.com/wms-platform/sla-service/pkg/middleware"
	"github.com/wms-platform/sla-service/pkg/tracing"
)

const serviceName = "sla-service"

func main() {
	cfg := config.Load()

	// Setup logger
	logConfig := logging.DefaultConfig(serviceName)
	logConfig.Level = logging.LogLevel(cfg.LogLevel)
	logger := logging.New(logConfig)
	logger.SetDefault()

	logger.Info("Starting sla-service API")

	ctx := context.Background()

	// Initialize OpenTelemetry tracing
	tracingConfig := tracing.DefaultConfig(serviceName)
	tracingConfig.OTLPEndpoint = cfg.OTLPEndpoint
	tracingConfig.Environment = cfg.Environment
	tracingConfig.Enabled = cfg.TracingEnabled

	tracerProvider, err := tracing.Initialize(ctx, tracingConfig)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize tracing")
	} else if tracerProvider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Failed to shutdown tracer")
			}
		}()
		logger.Info("Tracing initialized", "endpoint", tracingConfig.OTLPEndpoint)
	}

	// Initialize Prometheus metrics
	m := metrics.New(metrics.DefaultConfig(serviceName))
	logger.Info("Metrics initialized")

	// Load the starting deadline matrix
	matrix, err := cfg.LoadMatrix()
	if err != nil {
		logger.WithError(err).Error("Failed to load deadline matrix")
		os.Exit(1)
	}
	logger.Info("Deadline matrix loaded", "platforms", len(matrix))

	// Wire stores and the evaluation service
	orderStore := memory.NewOrderStore()
	matrixStore := memory.NewMatrixStore(matrix)
	evaluationService := application.NewEvaluationService(orderStore, matrixStore, logger, m, nil)

	if cfg.LoadDemoOnStart {
		if count, err := evaluationService.LoadDemoOrders(ctx); err != nil {
			logger.WithError(err).Error("Failed to load demo orders")
		} else {
			logger.Info("Demo orders loaded", "count", count)
		}
	}

	// Start the periodic re-evaluation loop
	refresher := application.NewRefresher(evaluationService, logger, application.RefresherConfig{
		Interval: cfg.RefreshInterval,
	})
	if err := refresher.Start(ctx); err != nil {
		logger.WithError(err).Error("Failed to start refresher")
		os.Exit(1)
	}
	defer refresher.Stop()
	logger.Info("Refresher started", "interval", cfg.RefreshInterval.String())

	slaHandler := handlers.NewSLAHandler(evaluationService, logger)

	// Setup Gin router with middleware
	router := gin.New()

	middlewareConfig := middleware.DefaultConfig(serviceName, logger.Logger)
	middleware.Setup(router, middlewareConfig)

	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.TracingMiddleware(serviceName))

	router.NoRoute(middleware.NoRoute())
	router.NoMethod(middleware.NoMethod())

	// Health check endpoints
	router.GET("/health", middleware.HealthCheck(serviceName))
	router.GET("/ready", middleware.ReadinessCheck(serviceName, func() error {
		// Everything is in memory; ready once the matrix is loaded
		return nil
	}))

	// Metrics endpoint
	router.GET("/metrics", middleware.MetricsEndpoint(m))

	// API v1 routes
	api := router.Group("/api/v1")
	slaHandler.RegisterRoutes(api)

	// Start server
	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("Server started", "addr", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server stopped")
}
