// Package npwp validates and decomposes Indonesian taxpayer registration
// numbers (NPWP, Nomor Pokok Wajib Pajak).
//
// An NPWP is a 15-digit identifier conventionally written as
//
//	ST.sss.sss.C-OOO.BBB
//
// where ST is the two-digit taxpayer type code, sss.sss the six-digit serial
// assigned centrally in blocks, C a single check digit, OOO the three-digit
// local tax office (KPP) code, and BBB the three-digit branch code (000 for
// the sole branch / head of family).
//
// Input is normalized before validation: dotted, dashed, space-separated and
// unformatted spellings are all accepted, the leading taxpayer type digit may
// be omitted (defaults to 0), and the trailing branch group may be omitted
// (defaults to 000). Any other shape is rejected, never padded or truncated.
//
// The check digit is extracted but not verified. A Luhn (mod 10) scheme over
// the first nine digits is documented for NPWP, but verification is out of
// scope here.
//
// Domain purity: this package contains only pure value-object logic with no
// I/O, no context.Context, and no time.Now() calls.
package npwp
