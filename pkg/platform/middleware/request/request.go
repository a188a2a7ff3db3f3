// Package request provides the middleware that stamps every request with an
// ID, a request-scoped time, and the resolved client IP.
package request

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"npwp-gateway/pkg/requestcontext"
)

// HeaderRequestID is the inbound/outbound request ID header.
const HeaderRequestID = "X-Request-ID"

// Middleware populates the request context. An inbound X-Request-ID is
// honored so IDs survive proxy hops; otherwise a fresh UUID is issued.
// The ID is echoed on the response for correlation.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())
		ctx = requestcontext.WithClientIP(ctx, clientIP(r))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP resolves the originating client address, preferring the first
// X-Forwarded-For hop when a proxy added one.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
