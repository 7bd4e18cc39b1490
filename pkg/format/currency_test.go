package format

import "testing"

// The thousands separator is U+202F, the fr-FR narrow no-break space.
const sep = "\u202f"

func TestEuro(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 42, "42 €"},
		{"Thousands grouped", 1234, "1" + sep + "234 €"},
		{"Large amount", 1234567, "1" + sep + "234" + sep + "567 €"},
		{"Rounded to whole euros", 1234.56, "1" + sep + "235 €"},
		{"Negative amount", -1234, "-1" + sep + "234 €"},
		{"Zero", 0, "0 €"},
		{"Tiny negative rounds to zero", -0.2, "0 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Euro(tt.amount); got != tt.expected {
				t.Errorf("Euro(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestEuroCents(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Two decimals with comma", 1234.56, "1" + sep + "234,56 €"},
		{"Whole amount keeps cents", 42, "42,00 €"},
		{"Negative amount", -1234.5, "-1" + sep + "234,50 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EuroCents(tt.amount); got != tt.expected {
				t.Errorf("EuroCents(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(4.7); got != "4,70 %" {
		t.Errorf("Percent(4.7) = %q, expected \"4,70 %%\"", got)
	}
	if got := Percent(0); got != "0,00 %" {
		t.Errorf("Percent(0) = %q, expected \"0,00 %%\"", got)
	}
	if got := Percent(-1.25); got != "-1,25 %" {
		t.Errorf("Percent(-1.25) = %q, expected \"-1,25 %%\"", got)
	}
}
