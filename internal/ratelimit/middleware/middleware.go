// Package middleware enforces the per-IP request budget in front of the
// validation endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"npwp-gateway/internal/ratelimit/metrics"
	"npwp-gateway/internal/ratelimit/models"
	"npwp-gateway/internal/ratelimit/store"
	"npwp-gateway/pkg/platform/httputil"
	"npwp-gateway/pkg/requestcontext"
)

// Middleware applies a per-IP rate limit using the configured store.
type Middleware struct {
	store   store.Store
	limit   int
	window  time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs the rate limit middleware. A limit of zero disables it.
func New(s store.Store, limit int, window time.Duration, logger *slog.Logger, m *metrics.Metrics) *Middleware {
	return &Middleware{
		store:   s,
		limit:   limit,
		window:  window,
		logger:  logger,
		metrics: m,
	}
}

// Handler wraps next with the admission check. Store failures fail open:
// an unreachable Redis must degrade limiting, not availability.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		ip := requestcontext.ClientIP(ctx)

		result, err := m.store.Allow(ctx, "ip:"+ip, m.limit, m.window)
		if err != nil {
			m.metrics.IncrementStoreError()
			m.logger.ErrorContext(ctx, "rate limit check failed", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		addHeaders(w, result)

		if !result.Allowed {
			m.metrics.IncrementDecision("limited")
			retryAfter := int(time.Until(result.ResetAt).Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			httputil.WriteJSON(w, http.StatusTooManyRequests, models.ExceededResponse{
				Error:      "rate_limit_exceeded",
				Message:    "Too many requests, slow down",
				RetryAfter: retryAfter,
			})
			return
		}

		m.metrics.IncrementDecision("allowed")
		next.ServeHTTP(w, r)
	})
}

// addHeaders sets the X-RateLimit-* headers regardless of outcome.
func addHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}
