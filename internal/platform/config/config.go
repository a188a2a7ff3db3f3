package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string

	// RateLimit is the per-IP request budget per RateLimitWindow.
	// Zero disables rate limiting.
	RateLimit       int
	RateLimitWindow time.Duration

	// BatchLimit caps how many inputs a single batch request may carry.
	BatchLimit int

	Redis RedisConfig
}

// RedisConfig holds the optional Redis connection settings. An empty URL
// means Redis is not configured and in-memory fallbacks are used.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("NPWP_GATEWAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:            addr,
		RateLimit:       intFromEnv("NPWP_GATEWAY_RATE_LIMIT", 60),
		RateLimitWindow: durationFromEnv("NPWP_GATEWAY_RATE_WINDOW", time.Minute),
		BatchLimit:      intFromEnv("NPWP_GATEWAY_BATCH_LIMIT", 100),
		Redis: RedisConfig{
			URL:          os.Getenv("NPWP_GATEWAY_REDIS_URL"),
			PoolSize:     intFromEnv("NPWP_GATEWAY_REDIS_POOL_SIZE", 10),
			MinIdleConns: intFromEnv("NPWP_GATEWAY_REDIS_MIN_IDLE", 2),
			DialTimeout:  durationFromEnv("NPWP_GATEWAY_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationFromEnv("NPWP_GATEWAY_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationFromEnv("NPWP_GATEWAY_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}
}

func intFromEnv(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return fallback
}
