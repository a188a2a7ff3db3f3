package handler

import (
	"npwp-gateway/internal/validation/models"
)

// ValidateBatchResponse is the HTTP response for POST /v1/npwp/validate/batch.
// Each element is the same envelope a single check would have produced, in
// input order.
type ValidateBatchResponse struct {
	Results []models.Envelope `json:"results"`
}
