package handler

import (
	dErrors "npwp-gateway/pkg/domain-errors"
)

// maxInputLen caps a single raw NPWP input. Generous: a formatted NPWP is
// 20 characters.
const maxInputLen = 64

// ValidateRequest is the HTTP request body for POST /v1/npwp/validate.
type ValidateRequest struct {
	NPWP string `json:"npwp"`
}

// Validate checks the request shape. An empty npwp field is allowed: the
// empty string is legal input to the validator and simply comes back
// structurally invalid.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.NPWP) > maxInputLen {
		return dErrors.New(dErrors.CodeValidation, "npwp must be at most 64 characters")
	}
	return nil
}

// ValidateBatchRequest is the HTTP request body for POST /v1/npwp/validate/batch.
type ValidateBatchRequest struct {
	NPWPs []string `json:"npwps"`
}

// Validate checks the request shape. The per-request count cap lives in the
// service where the configured limit is known.
func (r *ValidateBatchRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.NPWPs) == 0 {
		return dErrors.New(dErrors.CodeValidation, "npwps is required")
	}
	for _, raw := range r.NPWPs {
		if len(raw) > maxInputLen {
			return dErrors.New(dErrors.CodeValidation, "each npwp must be at most 64 characters")
		}
	}
	return nil
}
