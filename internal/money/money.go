// Package money converts between user-facing decimal text and exact
// decimal amounts. Parsing and formatting are caller concerns; the
// ledger engine only ever sees already-parsed values.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts decimal text into an exact amount. Either '.' or ','
// is accepted as the decimal separator. A parse failure here is a
// caller-side error and must never be forwarded to the engine.
func Parse(s string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// Format renders an amount with a currency prefix and exactly two
// fractional digits, rounding half-up.
func Format(prefix string, v decimal.Decimal) string {
	if prefix == "" {
		return v.StringFixed(2)
	}
	return prefix + " " + v.StringFixed(2)
}
