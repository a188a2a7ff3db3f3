package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"npwp-gateway/internal/validation/models"
	"npwp-gateway/pkg/platform/httputil"
	"npwp-gateway/pkg/requestcontext"
)

// Service defines the interface for validation operations.
type Service interface {
	Check(ctx context.Context, raw string) models.Envelope
	CheckBatch(ctx context.Context, raws []string) ([]models.Envelope, error)
}

// Handler wires validation endpoints to the validation service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a validation handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts validation endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/npwp/validate", h.HandleValidate)
	r.Post("/v1/npwp/validate/batch", h.HandleValidateBatch)
}

// HandleValidate handles POST /v1/npwp/validate requests. The HTTP status
// mirrors the envelope status, so callers can route on either.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger)
	if !ok {
		return
	}

	env := h.service.Check(ctx, req.NPWP)

	h.logger.InfoContext(ctx, "npwp validated",
		"request_id", requestID,
		"status", env.Status,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, env.Status, env)
}

// HandleValidateBatch handles POST /v1/npwp/validate/batch requests.
func (h *Handler) HandleValidateBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ValidateBatchRequest](w, r, h.logger)
	if !ok {
		return
	}

	results, err := h.service.CheckBatch(ctx, req.NPWPs)
	if err != nil {
		h.logger.ErrorContext(ctx, "batch validation rejected",
			"request_id", requestID,
			"batch_size", len(req.NPWPs),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "npwp batch validated",
		"request_id", requestID,
		"batch_size", len(req.NPWPs),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, ValidateBatchResponse{Results: results})
}
