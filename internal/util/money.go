package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney parses a monetary field from the export. Empty cells and the
// literal "nan" marker the source emits for missing values parse to zero with
// ok=false. Thousands separators and a decimal comma are tolerated.
func ParseMoney(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	if s == "" || strings.EqualFold(s, "nan") {
		return decimal.Zero, false
	}
	parsed, err := decimal.NewFromString(normalizeNumericToken(s))
	if err != nil {
		return decimal.Zero, false
	}
	return parsed, true
}

// ParseQuantity parses an item-quantity field. Missing or malformed values
// parse to zero with ok=false.
func ParseQuantity(value string) (decimal.Decimal, bool) {
	return ParseMoney(value)
}

// ParseBool parses the export's boolean flags (True/False, true/false, 1/0).
func ParseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func normalizeNumericToken(token string) string {
	compact := strings.ReplaceAll(token, "\u00A0", " ")
	compact = strings.ReplaceAll(compact, " ", "")
	if strings.Contains(compact, ",") && !strings.Contains(compact, ".") {
		return strings.ReplaceAll(compact, ",", ".")
	}
	if strings.Contains(compact, ",") && strings.Contains(compact, ".") {
		return strings.ReplaceAll(compact, ",", "")
	}
	return compact
}
