package npwp

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const (
	// canonicalLen is the full NPWP length in digits.
	canonicalLen = 15
	// noBranchLen is the length of an NPWP written without the branch group.
	noBranchLen = 12
)

// Structural validation failures. These are the only two failure kinds;
// check-digit mismatch is deliberately not one of them.
var (
	ErrMalformedLength = errors.New("not 15 digit")
	ErrZeroSerial      = errors.New("serial starts from 1, not 0")
)

var (
	leadingDigitDot = regexp.MustCompile(`^[0-9]\.`)
	nonDigit        = regexp.MustCompile(`[^0-9]`)
)

// NPWP wraps a raw input string and memoizes its validation outcome.
//
// Validation runs at most once per instance; the canonical digit string and
// the failure reason are cached on first use. The memoization is a plain
// field write, so an instance is not safe for concurrent first-time
// validation. Validate once before sharing, or guard externally.
type NPWP struct {
	raw    string
	digits string
	state  validState
	reason error
}

type validState uint8

const (
	stateUnknown validState = iota
	stateValid
	stateInvalid
)

// New wraps a raw string. No validation happens until the first query.
func New(raw string) *NPWP {
	return &NPWP{raw: raw}
}

// Raw returns the original input, untouched by normalization.
func (n *NPWP) Raw() string {
	return n.raw
}

// Validate reports whether the input normalizes to a structurally valid
// NPWP. The result is computed once and cached; repeated calls are cheap
// and always agree.
func (n *NPWP) Validate() bool {
	if n.state == stateUnknown {
		digits, err := normalizeDigits(n.raw)
		if err != nil {
			n.state = stateInvalid
			n.reason = err
		} else {
			n.state = stateValid
			n.digits = digits
		}
	}
	return n.state == stateValid
}

// ErrorReason returns the failure from the validation attempt, forcing
// validation if it has not run yet. It is nil for a valid NPWP and is
// always one of ErrMalformedLength or ErrZeroSerial otherwise.
func (n *NPWP) ErrorReason() error {
	n.Validate()
	return n.reason
}

// Normalize returns the canonical grouped form ST.sss.sss.C-OOO.BBB.
// ok is false when the input is invalid.
func (n *NPWP) Normalize() (string, bool) {
	if !n.Validate() {
		return "", false
	}
	return group(n.digits), true
}

// PrettyPrint is an alias for Normalize.
func (n *NPWP) PrettyPrint() (string, bool) {
	return n.Normalize()
}

// field slices the canonical digits at a fixed offset. Every accessor goes
// through here so that none can observe an invalid instance.
func (n *NPWP) field(start, end int) (string, bool) {
	if !n.Validate() {
		return "", false
	}
	return n.digits[start:end], true
}

// TaxpayerTypeCode returns the two-digit taxpayer classification prefix.
func (n *NPWP) TaxpayerTypeCode() (string, bool) {
	return n.field(0, 2)
}

// KodeWP is an alias for TaxpayerTypeCode.
func (n *NPWP) KodeWP() (string, bool) {
	return n.TaxpayerTypeCode()
}

// Serial returns the six-digit block-assigned sequence number. A valid
// serial is never all zeros.
func (n *NPWP) Serial() (string, bool) {
	return n.field(2, 8)
}

// NomorUrut is an alias for Serial.
func (n *NPWP) NomorUrut() (string, bool) {
	return n.Serial()
}

// CheckDigit returns the single check digit. It is extracted, not verified.
func (n *NPWP) CheckDigit() (string, bool) {
	return n.field(8, 9)
}

// LocalTaxOfficeCode returns the three-digit code of the administering
// regional tax office.
func (n *NPWP) LocalTaxOfficeCode() (string, bool) {
	return n.field(9, 12)
}

// KodeKPP is an alias for LocalTaxOfficeCode.
func (n *NPWP) KodeKPP() (string, bool) {
	return n.LocalTaxOfficeCode()
}

// BranchCode returns the three-digit branch suffix; 000 denotes the sole
// branch / head of family.
func (n *NPWP) BranchCode() (string, bool) {
	return n.field(12, 15)
}

// KodeCabang is an alias for BranchCode.
func (n *NPWP) KodeCabang() (string, bool) {
	return n.BranchCode()
}

// Validate is the stateless one-shot form: it checks an arbitrary string
// without touching any instance. It holds no state between calls.
func Validate(raw string) bool {
	_, err := normalizeDigits(raw)
	return err == nil
}

// Normalize is the stateless one-shot form of (*NPWP).Normalize, returning
// the structural failure instead of a bare ok flag.
func Normalize(raw string) (string, error) {
	digits, err := normalizeDigits(raw)
	if err != nil {
		return "", err
	}
	return group(digits), nil
}

// normalizeDigits turns loose input into the canonical 15-digit string.
//
// Two relaxations are accepted, and only these two: a missing leading
// taxpayer type digit (a single digit followed by a dot at the start) is
// defaulted to 0, and a missing branch group (12 digits after stripping) is
// defaulted to 000. Anything else that does not come out at 15 digits is
// rejected outright.
func normalizeDigits(raw string) (string, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if leadingDigitDot.MatchString(s) {
		s = "0" + s
	}
	s = nonDigit.ReplaceAllString(s, "")
	if len(s) == noBranchLen {
		s += "000"
	}
	if len(s) != canonicalLen {
		return "", ErrMalformedLength
	}
	// digits only at this point, so value zero means all zeros
	if s[2:8] == "000000" {
		return "", ErrZeroSerial
	}
	return s, nil
}

// group reformats 15 canonical digits into ST.sss.sss.C-OOO.BBB.
func group(d string) string {
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "." + d[8:9] + "-" + d[9:12] + "." + d[12:15]
}
