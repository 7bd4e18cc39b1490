package report

import (
	"bytes"
	"strings"
	"testing"

	"immoforecast/internal/results"
	"immoforecast/internal/simulation"
	"immoforecast/pkg/bankability"
)

func TestGenerate(t *testing.T) {
	result := results.Calculate(simulation.Default())

	var buf bytes.Buffer
	if err := Generate(&buf, "Colocation Lyon", result, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("Generate wrote nothing")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with the PDF magic, got %q", buf.Bytes()[:8])
	}
}

func TestGenerateZeroResult(t *testing.T) {
	result := results.Calculate(simulation.Input{})

	var buf bytes.Buffer
	if err := Generate(&buf, "Vide", result, nil); err != nil {
		t.Fatalf("Generate failed on a zero result: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("zero-result output is not a PDF")
	}
}

func TestGenerateWithBankability(t *testing.T) {
	result := results.Calculate(simulation.Default())
	indicator := bankability.Evaluate(
		bankability.Profile{MonthlyIncome: 3200, MonthlyDebt: 650},
		result.MonthlyPayment, result.MonthlyRealRent)

	var withIndicator bytes.Buffer
	if err := Generate(&withIndicator, "Colocation Lyon", result, &indicator); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !bytes.HasPrefix(withIndicator.Bytes(), []byte("%PDF")) {
		t.Fatal("output with indicator is not a PDF")
	}

	var without bytes.Buffer
	if err := Generate(&without, "Colocation Lyon", result, nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if withIndicator.Len() <= without.Len() {
		t.Errorf("indicator section added no content: %d vs %d bytes",
			withIndicator.Len(), without.Len())
	}
}

func TestPDFText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Euro sign to cp1252", "1 234 €", "1 234 \x80"},
		{"Narrow no-break space degrades", "1\u202f234", "1 234"},
		{"No-break space degrades", "4,70\u00a0%", "4,70 %"},
		{"Plain ASCII untouched", "Helvetica", "Helvetica"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pdfText(tt.input); got != tt.expected {
				t.Errorf("pdfText(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEuroHelperIsPDFSafe(t *testing.T) {
	formatted := euro(1234567)
	if strings.ContainsRune(formatted, ' ') || strings.ContainsRune(formatted, '€') {
		t.Errorf("euro() output %q still contains UTF-8 symbols", formatted)
	}
	if !strings.Contains(formatted, "\x80") {
		t.Errorf("euro() output %q lost the currency sign", formatted)
	}
}
