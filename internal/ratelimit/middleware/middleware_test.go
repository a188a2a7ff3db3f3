package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npwp-gateway/internal/ratelimit/models"
	"npwp-gateway/internal/ratelimit/store"
	"npwp-gateway/pkg/requestcontext"
)

func newRequest(ip string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/v1/npwp/validate", nil)
	return r.WithContext(requestcontext.WithClientIP(r.Context(), ip))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestHandler_LimitsPerIP(t *testing.T) {
	// nil metrics: promauto registration is process-global, methods are nil-safe
	mw := New(store.NewInMemoryStore(), 2, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	h := mw.Handler(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("1.2.3.4"))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("1.2.3.4"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	// a different IP is unaffected
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("5.6.7.8"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ZeroLimitDisables(t *testing.T) {
	mw := New(store.NewInMemoryStore(), 0, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	h := mw.Handler(okHandler())

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, newRequest("1.2.3.4"))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

type failingStore struct{}

func (failingStore) Allow(_ context.Context, _ string, _ int, _ time.Duration) (*models.Result, error) {
	return nil, assert.AnError
}

func (failingStore) Reset(_ context.Context, _ string) error { return nil }

func TestHandler_FailsOpenOnStoreError(t *testing.T) {
	mw := New(failingStore{}, 1, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	h := mw.Handler(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("1.2.3.4"))
	assert.Equal(t, http.StatusOK, rec.Code, "store failure must not reject traffic")
}
