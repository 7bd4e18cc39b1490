package simulation

import (
	"math"
	"testing"
)

func TestDefault(t *testing.T) {
	in := Default()

	if in.PurchasePrice != 92000 {
		t.Errorf("PurchasePrice = %.2f, expected 92000", in.PurchasePrice)
	}
	if in.NotaryFees != 7360 {
		t.Errorf("NotaryFees = %.2f, expected 7360 (8%% of the price)", in.NotaryFees)
	}
	if in.UnitCount != 3 || len(in.Rents) != 3 {
		t.Errorf("UnitCount = %d with %d rents, expected 3 and 3", in.UnitCount, len(in.Rents))
	}
	if len(in.Charges) != 10 {
		t.Errorf("Charges length = %d, expected 10", len(in.Charges))
	}

	seen := make(map[string]bool)
	for _, charge := range in.Charges {
		if seen[charge.ID] {
			t.Errorf("duplicate default charge id %q", charge.ID)
		}
		seen[charge.ID] = true
	}
}

func TestSetPurchasePrice(t *testing.T) {
	in := Default()
	in.SetPurchasePrice(150000)

	if in.PurchasePrice != 150000 {
		t.Errorf("PurchasePrice = %.2f, expected 150000", in.PurchasePrice)
	}
	if in.NotaryFees != 12000 {
		t.Errorf("NotaryFees = %.2f, expected the re-derived 12000", in.NotaryFees)
	}
}

func TestSetUnitCount(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		expectedRents []float64
	}{
		{"Grow pads with zero rents", 5, []float64{493, 493, 493, 0, 0}},
		{"Shrink truncates", 1, []float64{493}},
		{"Zero empties the list", 0, []float64{}},
		{"Negative clamps to zero", -2, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Default()
			in.SetUnitCount(tt.count)

			if len(in.Rents) != len(tt.expectedRents) {
				t.Fatalf("Rents length = %d, expected %d", len(in.Rents), len(tt.expectedRents))
			}
			for i, rent := range in.Rents {
				if rent != tt.expectedRents[i] {
					t.Errorf("Rents[%d] = %.2f, expected %.2f", i, rent, tt.expectedRents[i])
				}
			}
		})
	}
}

func TestSetRent(t *testing.T) {
	in := Default()
	in.SetRent(1, 520)
	if in.Rents[1] != 520 {
		t.Errorf("Rents[1] = %.2f, expected 520", in.Rents[1])
	}

	// Out-of-range indexes are ignored.
	in.SetRent(-1, 999)
	in.SetRent(10, 999)
	for i, rent := range in.Rents {
		if rent == 999 {
			t.Errorf("Rents[%d] was written through an out-of-range index", i)
		}
	}
}

func TestChargeOperations(t *testing.T) {
	in := Default()
	initial := len(in.Charges)

	if err := in.AddCharge(Charge{ID: "gli", Name: "Assurance GLI", AnnualValue: 250}); err != nil {
		t.Fatalf("AddCharge failed: %v", err)
	}
	if len(in.Charges) != initial+1 {
		t.Fatalf("Charges length = %d, expected %d", len(in.Charges), initial+1)
	}

	if err := in.AddCharge(Charge{ID: "gli", Name: "Doublon", AnnualValue: 1}); err == nil {
		t.Error("AddCharge accepted a duplicate id")
	}

	if err := in.UpdateCharge(Charge{ID: "gli", Name: "Assurance GLI", AnnualValue: 300}); err != nil {
		t.Fatalf("UpdateCharge failed: %v", err)
	}
	found := false
	for _, charge := range in.Charges {
		if charge.ID == "gli" {
			found = true
			if charge.AnnualValue != 300 {
				t.Errorf("updated charge value = %.2f, expected 300", charge.AnnualValue)
			}
		}
	}
	if !found {
		t.Fatal("updated charge disappeared")
	}

	if err := in.UpdateCharge(Charge{ID: "absent"}); err == nil {
		t.Error("UpdateCharge accepted an unknown id")
	}

	if err := in.RemoveCharge("gli"); err != nil {
		t.Fatalf("RemoveCharge failed: %v", err)
	}
	if len(in.Charges) != initial {
		t.Errorf("Charges length = %d after removal, expected %d", len(in.Charges), initial)
	}
	if err := in.RemoveCharge("gli"); err == nil {
		t.Error("RemoveCharge accepted an already-removed id")
	}
}

func TestChargeValues(t *testing.T) {
	in := Input{Charges: []Charge{
		{ID: "a", AnnualValue: 100},
		{ID: "b", AnnualValue: 200.5},
	}}
	values := in.ChargeValues()
	if len(values) != 2 || values[0] != 100 || values[1] != 200.5 {
		t.Errorf("ChargeValues = %v, expected [100 200.5]", values)
	}
}

func TestClone(t *testing.T) {
	in := Default()
	clone := in.Clone()

	clone.Rents[0] = 1
	clone.Charges[0].AnnualValue = 1
	clone.PurchasePrice = 1

	if in.Rents[0] == 1 {
		t.Error("mutating the clone's rents leaked into the original")
	}
	if in.Charges[0].AnnualValue == 1 {
		t.Error("mutating the clone's charges leaked into the original")
	}
	if in.PurchasePrice == 1 {
		t.Error("mutating the clone's scalar leaked into the original")
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"Plain integer", "92000", 92000},
		{"Dot decimal", "159.81", 159.81},
		{"Comma decimal", "159,81", 159.81},
		{"Surrounding spaces", "  42 ", 42},
		{"Empty", "", 0},
		{"Cleared field", "   ", 0},
		{"Half-typed", "12a", 0},
		{"Just a sign", "-", 0},
		{"Negative value", "-300", -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.raw)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ParseAmount(%q) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	if got := ParseCount("3"); got != 3 {
		t.Errorf("ParseCount(\"3\") = %d, expected 3", got)
	}
	if got := ParseCount("-2"); got != 0 {
		t.Errorf("ParseCount(\"-2\") = %d, expected 0", got)
	}
	if got := ParseCount("abc"); got != 0 {
		t.Errorf("ParseCount(\"abc\") = %d, expected 0", got)
	}
	if got := ParseCount("2.9"); got != 2 {
		t.Errorf("ParseCount(\"2.9\") = %d, expected the truncated 2", got)
	}
}
