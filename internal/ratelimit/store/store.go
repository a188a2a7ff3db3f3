// Package store provides the counting backends for rate limiting. The
// in-memory store is per-process; the Redis store coordinates replicas.
package store

import (
	"context"
	"time"

	"npwp-gateway/internal/ratelimit/models"
)

// Store counts requests per key within a window and decides admission.
type Store interface {
	// Allow records one request against key and reports whether it fits
	// within limit for the window.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)

	// Reset clears the counter for a key.
	Reset(ctx context.Context, key string) error
}
