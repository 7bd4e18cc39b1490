package format

import (
	"fmt"
	"math"
	"strings"
)

// Euro returns an amount formatted the French way with a trailing euro
// sign and no decimals (e.g., "-1 234 €"), matching the display format
// used by consumers of the engine.
func Euro(amount float64) string {
	rounded := math.Round(math.Abs(amount))
	formatted := groupThousands(fmt.Sprintf("%.0f", rounded))
	if amount < -0.5 {
		return "-" + formatted + " €"
	}
	return formatted + " €"
}

// EuroCents returns an amount with two decimals and a comma separator
// (e.g., "-1 234,56 €").
func EuroCents(amount float64) string {
	formatted := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.SplitN(formatted, ".", 2)
	intPart := groupThousands(parts[0])
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + intPart + "," + decPart + " €"
}

// Percent formats a ratio already expressed in percent (e.g., 4.7 -> "4,70 %").
func Percent(value float64) string {
	formatted := strings.Replace(fmt.Sprintf("%.2f", value), ".", ",", 1)
	return formatted + " %"
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			// Narrow no-break space, the fr-FR thousands separator.
			builder.WriteRune('\u202f')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
