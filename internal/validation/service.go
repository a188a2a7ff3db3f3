// Package validation builds the structured result envelope on top of the
// pure npwp core and fans out batch requests.
package validation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"npwp-gateway/internal/validation/metrics"
	"npwp-gateway/internal/validation/models"
	dErrors "npwp-gateway/pkg/domain-errors"
	"npwp-gateway/pkg/npwp"
	"npwp-gateway/pkg/requestcontext"
)

var tracer = otel.Tracer("npwp-gateway/internal/validation")

// batchConcurrency bounds the fan-out of a batch check. Checks are pure
// CPU work, so a small limit is plenty.
const batchConcurrency = 8

// Service performs validation checks and assembles envelopes.
type Service struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	batchLimit int
}

// New constructs the validation service.
func New(logger *slog.Logger, m *metrics.Metrics, batchLimit int) *Service {
	return &Service{
		logger:     logger,
		metrics:    m,
		batchLimit: batchLimit,
	}
}

// Check validates one raw input and returns the result envelope. Invalid
// input is a caller-visible outcome, never an error: the envelope reports
// it with a caller-error status and the structural reason as message.
func (s *Service) Check(ctx context.Context, raw string) models.Envelope {
	_, span := tracer.Start(ctx, "validation.Check")
	defer span.End()

	start := time.Now()
	n := npwp.New(raw)

	env := models.Envelope{
		Metadata: map[string]any{
			"checked_at": requestcontext.Now(ctx).UTC().Format(time.RFC3339),
		},
	}

	if !n.Validate() {
		reason := n.ErrorReason()
		env.Status = models.StatusCallerError
		env.Message = reason.Error()
		span.SetAttributes(attribute.String("npwp.outcome", outcomeLabel(reason)))
		s.metrics.IncrementCheck(outcomeLabel(reason))
		s.metrics.ObserveCheckLatency(time.Since(start))
		return env
	}

	canonical, _ := n.Normalize()
	typeCode, _ := n.TaxpayerTypeCode()
	serial, _ := n.Serial()
	checkDigit, _ := n.CheckDigit()
	officeCode, _ := n.LocalTaxOfficeCode()
	branchCode, _ := n.BranchCode()

	env.Status = models.StatusOK
	env.Message = "OK"
	env.Result = &models.Fields{
		NPWP:               canonical,
		TaxpayerTypeCode:   typeCode,
		Serial:             serial,
		CheckDigit:         checkDigit,
		LocalTaxOfficeCode: officeCode,
		BranchCode:         branchCode,
	}

	span.SetAttributes(attribute.String("npwp.outcome", "valid"))
	s.metrics.IncrementCheck("valid")
	s.metrics.ObserveCheckLatency(time.Since(start))
	return env
}

// CheckBatch validates up to batchLimit inputs concurrently. Order of the
// results matches the order of the inputs.
func (s *Service) CheckBatch(ctx context.Context, raws []string) ([]models.Envelope, error) {
	if len(raws) > s.batchLimit {
		return nil, dErrors.New(dErrors.CodeValidation, "batch exceeds the configured limit")
	}

	ctx, span := tracer.Start(ctx, "validation.CheckBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("npwp.batch_size", len(raws)))
	s.metrics.ObserveBatchSize(len(raws))

	results := make([]models.Envelope, len(raws))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			results[i] = s.Check(ctx, raw)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results, nil
}

// outcomeLabel maps a structural failure to its metrics/tracing label.
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, npwp.ErrZeroSerial):
		return "zero_serial"
	case errors.Is(err, npwp.ErrMalformedLength):
		return "malformed_length"
	default:
		return "invalid"
	}
}
