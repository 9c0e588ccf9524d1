package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/af-corp/wayfinder-gateway/internal/completion"
	"github.com/af-corp/wayfinder-gateway/internal/config"
	"github.com/af-corp/wayfinder-gateway/internal/gateway"
	"github.com/af-corp/wayfinder-gateway/internal/pipeline"
	"github.com/af-corp/wayfinder-gateway/internal/prompt"
	"github.com/af-corp/wayfinder-gateway/internal/ratelimit"
	"github.com/af-corp/wayfinder-gateway/internal/speech"
	"github.com/af-corp/wayfinder-gateway/internal/telemetry"
)

var version = "dev"

func main() {
	configDir := flag.String("config", "configs", "path to configuration directory")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	loader := config.NewLoader(*configDir, logger)
	if err := loader.Load(); err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := loader.Watch(); err != nil {
		logger.Warn("failed to start config watcher", "error", err)
	}

	cfg := loader.Config()

	// Connect to Redis (rate limiting only; the gateway runs without it)
	var rdb *redis.Client
	if len(cfg.Redis.Addresses) > 0 && cfg.Redis.Addresses[0] != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addresses[0],
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis not reachable (rate limiting disabled)", "error", err)
			rdb = nil
		} else {
			logger.Info("redis connected")
		}
	}

	// Upstream clients; swapped atomically on config reload so in-flight
	// requests finish on the client they loaded
	completionClient := completion.NewReloadable(completion.FromConfig(cfg.Completion))
	recognizer := speech.NewReloadable(speech.FromConfig(cfg.Speech))
	loader.OnReload(func() {
		fresh := loader.Config()
		completionClient.Swap(completion.FromConfig(fresh.Completion))
		recognizer.Swap(speech.FromConfig(fresh.Speech))
		logger.Info("upstream clients reloaded")
	})

	metrics := telemetry.NewMetrics()
	clock := prompt.NewClock(cfg.Assistant.OriginLabel)
	pipe := pipeline.New(clock, completionClient, metrics)
	handler := gateway.NewHandler(pipe, recognizer, metrics)

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)

	r.Get("/wayfinder/v1/health", healthHandler)

	r.Group(func(r chi.Router) {
		if cfg.RateLimit.Enabled {
			limiter := ratelimit.NewLimiter(rdb)
			r.Use(ratelimit.Middleware(limiter, cfg.RateLimit.RequestsPerMinute, metrics))
		}
		r.Post("/v1/chat", handler.Chat)
		r.Post("/v1/routing", handler.Routing)
		r.Post("/v1/speech-to-text", handler.SpeechToText)
	})

	// Metrics on a side port
	if cfg.Telemetry.MetricsPort > 0 {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Telemetry.MetricsPort)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("metrics listener starting", "addr", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				logger.Error("metrics listener failed", "error", err)
			}
		}()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("gateway starting", "addr", addr, "version", version)
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", "signal", sig)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("gateway stopped")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"version": version,
	})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = generateRequestID()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := context.WithValue(r.Context(), requestIDKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type contextKey string

const requestIDKey contextKey = "request_id"

func generateRequestID() string {
	now := time.Now()
	b := make([]byte, 8)
	rand.Read(b)
	return fmt.Sprintf("req_%d_%s", now.UnixMilli(), hex.EncodeToString(b))
}
