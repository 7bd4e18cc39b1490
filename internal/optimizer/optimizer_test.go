package optimizer

import (
	"math"
	"testing"

	"immoforecast/internal/results"
	"immoforecast/internal/simulation"
)

func optimizerInput() simulation.Input {
	in := simulation.Default()
	// The searches vary price and rent, so the mensualité must track the
	// probed loan instead of staying pinned at a manual figure.
	in.AutoCredit = true
	return in
}

func TestMaxPurchasePriceConverges(t *testing.T) {
	runner := NewRunner(nil)
	in := optimizerInput()

	baseline := results.Calculate(in).MonthlyCashflowNet
	summary, err := runner.MaxPurchasePrice(in, baseline)
	if err != nil {
		t.Fatalf("MaxPurchasePrice failed: %v", err)
	}

	if !summary.Converged {
		t.Errorf("search did not converge: %+v", summary)
	}
	if summary.Iterations <= 0 || summary.Iterations > 50 {
		t.Errorf("Iterations = %d, expected within (0, 50]", summary.Iterations)
	}
	if math.Abs(summary.Achieved-baseline) > 1.0 {
		t.Errorf("Achieved = %.2f, expected within 1€ of the target %.2f", summary.Achieved, baseline)
	}

	// The current price already hits its own cashflow, so the highest
	// admissible price is at least the current one.
	if summary.Value < in.PurchasePrice-1000 {
		t.Errorf("Value = %.2f, expected at least around the current price %.2f",
			summary.Value, in.PurchasePrice)
	}

	verify := in.Clone()
	verify.SetPurchasePrice(summary.Value)
	achieved := results.Calculate(verify).MonthlyCashflowNet
	if math.Abs(achieved-summary.Achieved) > 0.01 {
		t.Errorf("re-evaluated cashflow %.2f does not match the reported %.2f", achieved, summary.Achieved)
	}
}

func TestMaxPurchasePriceUnreachableTarget(t *testing.T) {
	runner := NewRunner(nil)

	_, err := runner.MaxPurchasePrice(optimizerInput(), 100000)
	if err == nil {
		t.Fatal("expected an error for a cashflow no price can reach")
	}
}

func TestMaxPurchasePriceDoesNotMutateInput(t *testing.T) {
	runner := NewRunner(nil)
	in := optimizerInput()
	priceBefore := in.PurchasePrice
	notaryBefore := in.NotaryFees

	if _, err := runner.MaxPurchasePrice(in, 0); err != nil {
		t.Fatalf("MaxPurchasePrice failed: %v", err)
	}

	if in.PurchasePrice != priceBefore || in.NotaryFees != notaryBefore {
		t.Errorf("input mutated: price %.2f, notary %.2f", in.PurchasePrice, in.NotaryFees)
	}
}

func TestMinUnitRentConverges(t *testing.T) {
	runner := NewRunner(nil)
	in := optimizerInput()

	summary, err := runner.MinUnitRent(in, 100)
	if err != nil {
		t.Fatalf("MinUnitRent failed: %v", err)
	}

	if !summary.Converged {
		t.Errorf("search did not converge: %+v", summary)
	}
	if summary.Field != "loyers" {
		t.Errorf("Field = %s, expected loyers", summary.Field)
	}
	if math.Abs(summary.Achieved-100) > 1.0 {
		t.Errorf("Achieved = %.2f, expected within 1€ of 100", summary.Achieved)
	}
	if summary.Value <= 0 || summary.Value >= 10000 {
		t.Errorf("Value = %.2f, expected a rent strictly inside the search bounds", summary.Value)
	}

	verify := in.Clone()
	for i := range verify.Rents {
		verify.Rents[i] = summary.Value
	}
	achieved := results.Calculate(verify).MonthlyCashflowNet
	if math.Abs(achieved-summary.Achieved) > 0.01 {
		t.Errorf("re-evaluated cashflow %.2f does not match the reported %.2f", achieved, summary.Achieved)
	}
}

func TestMinUnitRentUnreachableTarget(t *testing.T) {
	runner := NewRunner(nil)

	_, err := runner.MinUnitRent(optimizerInput(), 1000000)
	if err == nil {
		t.Fatal("expected an error for a cashflow no rent can reach")
	}
}
