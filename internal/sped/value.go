package sped

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SPED numeric fields use a comma as the fractional separator and ddmmyyyy
// dates with no separators.
const dateFormat = "02012006"

// ParseAmount converts a numeric field like "1234,56" to an exact decimal.
// Blank or unparseable values normalize to zero.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(normalizeNumber(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseOptionalAmount is ParseAmount for optional fields: blank or
// unparseable values report absence instead of zero.
func ParseOptionalAmount(raw string) *decimal.Decimal {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	d, err := decimal.NewFromString(normalizeNumber(raw))
	if err != nil {
		return nil
	}
	return &d
}

// ParseDate parses a ddmmyyyy field. Undersized or unparseable values
// resolve to the fallback date rather than failing the row.
func ParseDate(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if len(raw) < 8 {
		return fallback
	}
	d, err := time.Parse(dateFormat, raw[:8])
	if err != nil {
		return fallback
	}
	return d
}

// ParseOptionalDate is ParseDate for optional fields: blank values report
// absence, malformed non-blank values resolve to the fallback date.
func ParseOptionalDate(raw string, fallback time.Time) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	d := ParseDate(raw, fallback)
	return &d
}

// PadCode left-pads a classification code with zeros to width.
func PadCode(code string, width int) string {
	code = strings.TrimSpace(code)
	if len(code) >= width {
		return code
	}
	return strings.Repeat("0", width-len(code)) + code
}

func normalizeNumber(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
}
