// Package httpapi assembles the gateway's HTTP surface: middleware chain,
// validation endpoints, health and metrics.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ratelimitmw "npwp-gateway/internal/ratelimit/middleware"
	validationhandler "npwp-gateway/internal/validation/handler"
	requestmw "npwp-gateway/pkg/platform/middleware/request"
)

// NewRouter wires all public endpoints. Handlers delegate to domain
// services so transport concerns remain isolated.
func NewRouter(validation *validationhandler.Handler, ratelimit *ratelimitmw.Middleware, healthz http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(requestmw.Middleware)

	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(ratelimit.Handler)
		validation.Register(r)
	})

	return r
}
