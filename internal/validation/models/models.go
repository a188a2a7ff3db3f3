package models

// Envelope statuses are coarse outcome codes: success, caller error,
// internal error. They intentionally track HTTP status classes.
const (
	StatusOK          = 200
	StatusCallerError = 400
	StatusInternal    = 500
)

// Envelope is the structured result of a validation check. It is the one
// externally documented response shape; any wrapper built on the core must
// preserve it.
type Envelope struct {
	Status   int            `json:"status"`
	Message  string         `json:"message"` // "OK" on success
	Result   *Fields        `json:"result,omitempty"`
	Metadata map[string]any `json:"metadata"` // extensible, may be empty
}

// Fields carries the parsed field set of a valid NPWP.
type Fields struct {
	NPWP               string `json:"npwp"` // canonical grouped form
	TaxpayerTypeCode   string `json:"taxpayer_type_code"`
	Serial             string `json:"serial"`
	CheckDigit         string `json:"check_digit"` // extracted, not verified
	LocalTaxOfficeCode string `json:"local_tax_office_code"`
	BranchCode         string `json:"branch_code"`
}
