// Package currency parses and formats the shop's fixed-prefix price strings
// ("Fr. 78", "Fr. 12.90"). All arithmetic on prices happens on
// decimal.Decimal values; the string form exists only at the API boundary.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Prefix is the currency marker carried by every price string.
const Prefix = "Fr."

// Parse strips the prefix and surrounding whitespace and returns the numeric
// value. A missing prefix is tolerated ("12.90" parses fine); anything that
// is not a plain decimal number is an error.
func Parse(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), Prefix))
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty price %q", s)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed price %q: %w", s, err)
	}
	return d, nil
}

// Format renders a value back into display form with exactly two decimal
// places, e.g. Format(decimal.NewFromInt(78)) == "Fr. 78.00".
func Format(d decimal.Decimal) string {
	return Prefix + " " + d.StringFixed(2)
}
