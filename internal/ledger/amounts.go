package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// silverTokens is the canonical marker set; matching is containment on the
// lowercased fineness text.
var silverTokens = []string{"silver", "gümüş", "gumus"}

// IsSilverMarker reports whether the fineness text designates silver rather
// than a gold purity fraction.
func IsSilverMarker(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	for _, token := range silverTokens {
		if strings.Contains(v, token) {
			return true
		}
	}
	return false
}

// ParseDecimal coerces free-text numeric input. Unparseable input contributes
// zero so a single bad field can never poison a sum.
func ParseDecimal(value string) decimal.Decimal {
	d, ok := ParseDecimalOK(value)
	if !ok {
		return decimal.Zero
	}
	return d
}

// ParseDecimalOK is ParseDecimal with an explicit validity flag, for callers
// that must distinguish absent from zero.
func ParseDecimalOK(value string) (decimal.Decimal, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return decimal.Zero, false
	}
	// tolerate Turkish decimal commas in hand-entered values
	v = strings.ReplaceAll(v, ",", ".")
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatWeight renders a gram value for reports: 3 decimal places.
func FormatWeight(d decimal.Decimal) string {
	return d.StringFixed(3)
}

// FormatAmount renders a currency value for reports: 2 decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
