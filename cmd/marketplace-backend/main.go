package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/threadly-market/marketplace-backend/internal/api/handlers"
	"github.com/threadly-market/marketplace-backend/internal/api/middleware"
	"github.com/threadly-market/marketplace-backend/internal/cache"
	"github.com/threadly-market/marketplace-backend/internal/config"
	"github.com/threadly-market/marketplace-backend/internal/health"
	"github.com/threadly-market/marketplace-backend/internal/metrics"
	repository "github.com/threadly-market/marketplace-backend/internal/repositories"
	service "github.com/threadly-market/marketplace-backend/internal/services"
	"github.com/threadly-market/marketplace-backend/internal/telemetry"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.Setup(context.Background(), &cfg.Telemetry)
	if err != nil {
		slog.Error("❌ Error initializing telemetry", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConnect.Host,
		Username: cfg.RedisConnect.Username,
		Password: cfg.RedisConnect.Password,
		DB:       cfg.RedisConnect.DB,
	})

	categoryCache := cache.NewRedisCache(redisClient, cfg.Catalog.SnapshotTTL)
	snapshot := cache.NewCategorySnapshot(categoryCache, repos.Categories, cfg.Catalog.SnapshotTTL)

	browseService := service.NewBrowseService(snapshot, repos, &cfg.Catalog)
	browseHandler := handlers.NewBrowseHandler(browseService, cfg.Catalog.DefaultCountry)
	searchService := service.NewSearchService(snapshot, repos, &cfg.Catalog)
	searchHandler := handlers.NewSearchHandler(searchService, cfg.Catalog.DefaultCountry)
	sessionMiddleware := middleware.NewSessionMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/categories", sessionMiddleware.WithViewer(browseHandler.CategoryPage()))
	routerMux.HandleFunc("GET /api/v1/categories/{segments...}", sessionMiddleware.WithViewer(browseHandler.CategoryPage()))
	routerMux.HandleFunc("GET /api/v1/search", sessionMiddleware.WithViewer(searchHandler.Search()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "marketplace-backend")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
	}
}
