package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/api"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/cache"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/config"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/query"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/remote"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

const defaultAppName = "ShopUI"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: No .env file found or failed to load, relying on system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Error loading configuration: %v", err)
	}

	logger := newLogger(cfg)
	logger.Info("starting service", "app_env", cfg.AppEnv, "log_level", cfg.LogLevel)

	httpClient := &http.Client{Timeout: 30 * time.Second}

	identity := remote.NewIdentityClient(cfg.Services.IdentityServiceBaseURL, httpClient, logger)

	// The catalog, basket and order services are optional. A nil client
	// disables only the routes that depend on it.
	var catalog remote.CatalogService
	if cfg.Services.CatalogServiceBaseURL != "" {
		catalog = remote.NewCatalogClient(cfg.Services.CatalogServiceBaseURL, httpClient, logger)
	} else {
		logger.Warn("CATALOG_SERVICE_BASE_URL is not set, catalog features are disabled")
	}

	var baskets remote.BasketService
	if cfg.Services.BasketServiceBaseURL != "" {
		baskets = remote.NewBasketClient(cfg.Services.BasketServiceBaseURL, httpClient, logger)
	} else {
		logger.Warn("BASKET_SERVICE_BASE_URL is not set, basket features are disabled")
	}

	var orders remote.OrderService
	if cfg.Services.OrderServiceBaseURL != "" {
		orders = remote.NewOrderClient(cfg.Services.OrderServiceBaseURL, httpClient, logger)
	} else {
		logger.Warn("ORDER_SERVICE_BASE_URL is not set, order features are disabled")
	}

	c := cache.New()
	sess := session.New(cfg.Services.LoginUIBaseURL)

	browser := query.NewBrowser(func(q query.Query) {
		logger.Debug("browse query committed", "query", q.Encode())
	})
	defer browser.Close()

	handler := api.NewHTTPHandler(identity, catalog, baskets, orders, c, sess, browser, logger)

	router := chi.NewRouter()
	setupBaseMiddleware(router, logger)
	registerHealthCheck(router)
	handler.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:         ":" + cfg.HttpServer.Port,
		Handler:      router,
		ReadTimeout:  cfg.HttpServer.TimeoutRead,
		WriteTimeout: cfg.HttpServer.TimeoutWrite,
		IdleTimeout:  cfg.HttpServer.TimeoutIdle,
	}

	go func() {
		logger.Info("HTTP server listening", "port", cfg.HttpServer.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown(logger, httpServer)
	logger.Info("service shutdown sequence finished")
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.AppEnv == "development" {
		handler = tint.NewHandler(os.Stdout, &tint.Options{Level: level, TimeFormat: time.Kitchen})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func setupBaseMiddleware(router *chi.Mux, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(api.ForwardCredentials)
	logger.Info("base HTTP middleware registered")
}

func registerHealthCheck(router *chi.Mux) {
	router.Get("/api/v1/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":      "healthy",
			"serviceName": defaultAppName,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func waitForShutdown(logger *slog.Logger, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-sigChan
	logger.Info("received signal, starting graceful shutdown", "signal", receivedSignal.String())

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server graceful shutdown failed", "error", err)
		return
	}
	logger.Info("HTTP server gracefully shut down")
}
