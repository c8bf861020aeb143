package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rePriceDigits = regexp.MustCompile(`[0-9][0-9.,]*`)

// ParsePrice converts a localized price string ("R$ 1.234,56", "1234,56",
// "R$12,90") to a float. The comma is the decimal separator and the dot a
// thousands separator; a dot followed by exactly two digits at the end is also
// accepted as a decimal separator ("12.90"). Unparsable input yields 0 — the
// persister stores a zero price rather than dropping the product.
func ParsePrice(s string) float64 {
	m := rePriceDigits.FindString(s)
	if m == "" {
		return 0
	}

	if i := strings.LastIndex(m, ","); i >= 0 {
		// Brazilian format: dots are thousands separators
		intPart := strings.ReplaceAll(m[:i], ".", "")
		m = intPart + "." + strings.ReplaceAll(m[i+1:], ".", "")
	} else if i := strings.LastIndex(m, "."); i >= 0 && len(m)-i-1 != 2 {
		// dot without two trailing digits: treat all dots as thousands separators
		m = strings.ReplaceAll(m, ".", "")
	} else if i >= 0 {
		// "1.234.56" -> keep only the last dot as decimal
		m = strings.ReplaceAll(m[:i], ".", "") + m[i:]
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
