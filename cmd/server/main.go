package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"npwp-gateway/internal/platform/config"
	"npwp-gateway/internal/platform/httpserver"
	"npwp-gateway/internal/platform/logger"
	platformredis "npwp-gateway/internal/platform/redis"
	ratelimitmetrics "npwp-gateway/internal/ratelimit/metrics"
	ratelimitmw "npwp-gateway/internal/ratelimit/middleware"
	ratelimitstore "npwp-gateway/internal/ratelimit/store"
	"npwp-gateway/internal/validation"
	validationhandler "npwp-gateway/internal/validation/handler"
	validationmetrics "npwp-gateway/internal/validation/metrics"

	httpapi "npwp-gateway/internal/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis setup failed", "error", err)
		os.Exit(1)
	}

	// Redis coordinates the limit across replicas; without it each
	// process enforces its own budget.
	var limitStore ratelimitstore.Store = ratelimitstore.NewInMemoryStore()
	if redisClient != nil {
		limitStore = ratelimitstore.NewRedisStore(redisClient.Client)
		defer redisClient.Close()
		log.Info("rate limiting via redis")
	}

	limiter := ratelimitmw.New(limitStore, cfg.RateLimit, cfg.RateLimitWindow, log, ratelimitmetrics.New())

	svc := validation.New(log, validationmetrics.New(), cfg.BatchLimit)
	handler := validationhandler.New(svc, log)

	healthz := func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				http.Error(w, "redis unhealthy", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}

	router := httpapi.NewRouter(handler, limiter, healthz)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting npwp-gateway", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
