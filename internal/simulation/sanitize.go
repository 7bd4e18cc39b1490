package simulation

import (
	"strconv"
	"strings"

	"immoforecast/pkg/mathutil"
)

// ParseAmount turns a raw user-typed value into a number the engines can
// consume. Anything that does not parse as a finite number becomes 0,
// so recomputing on every keystroke never crashes on a half-typed or
// cleared field. Comma decimal separators are accepted.
func ParseAmount(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	trimmed = strings.Replace(trimmed, ",", ".", 1)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return mathutil.SafeNumber(value)
}

// ParseCount parses a non-negative integer counter, defaulting to 0.
func ParseCount(raw string) int {
	count := int(ParseAmount(raw))
	if count < 0 {
		return 0
	}
	return count
}
