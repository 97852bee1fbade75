package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// notAvailable is shown where the backend omitted a figure.
const notAvailable = "N/A"

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// formatCoordinate renders a coordinate with six decimal places.
func formatCoordinate(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%.6f", *v)
}

// formatFloat renders a figure without trailing zeros.
func formatFloat(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatLitres renders a whole-litre figure with thousands separators.
func formatLitres(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return groupThousands(fmt.Sprintf("%.0f", *v))
}

// formatMoney renders a currency figure with two decimals and thousands
// separators.
func formatMoney(v *float64) string {
	if v == nil {
		return notAvailable
	}
	whole := fmt.Sprintf("%.2f", *v)
	dot := strings.IndexByte(whole, '.')
	return groupThousands(whole[:dot]) + whole[dot:]
}

// groupThousands inserts comma separators into a plain integer string.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// titleCase upper-cases the first letter of each word, for crop, station and
// season names the backend returns in lower case.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// orNA substitutes the not-available marker for empty strings.
func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
