package stress

import (
	"testing"

	"immoforecast/internal/results"
	"immoforecast/internal/simulation"
	"immoforecast/pkg/mathutil"
)

func stressInput() simulation.Input {
	in := simulation.Default()
	in.AutoCredit = true
	return in
}

func TestRunScenarioSet(t *testing.T) {
	scenarios := Run(nil, stressInput())

	if len(scenarios) != 4 {
		t.Fatalf("scenario count = %d, expected 4", len(scenarios))
	}

	expectedKeys := []string{KeyNominal, KeyVacancyShock, KeyRateShock, KeyRentDrop}
	for i, key := range expectedKeys {
		if scenarios[i].Key != key {
			t.Errorf("scenario %d key = %s, expected %s", i, scenarios[i].Key, key)
		}
	}

	if scenarios[0].DeltaMonthlyNet != 0 {
		t.Errorf("nominal delta = %.2f, expected 0", scenarios[0].DeltaMonthlyNet)
	}
}

func TestRunShocksDegradeCashflow(t *testing.T) {
	scenarios := Run(results.NewEngine(nil), stressInput())

	for _, scenario := range scenarios[1:] {
		if scenario.DeltaMonthlyNet >= 0 {
			t.Errorf("scenario %s delta = %.2f, expected an adverse shock to cost money",
				scenario.Key, scenario.DeltaMonthlyNet)
		}
		if scenario.DeltaMonthlyNet != mathutil.Round(scenario.DeltaMonthlyNet) {
			t.Errorf("scenario %s delta = %v, expected a cent-rounded figure",
				scenario.Key, scenario.DeltaMonthlyNet)
		}
	}
}

func TestRunRateShockRepricesPayment(t *testing.T) {
	in := stressInput()
	scenarios := Run(nil, in)

	nominal := scenarios[0].Results
	rateShock := scenarios[2].Results
	if rateShock.MonthlyPayment <= nominal.MonthlyPayment {
		t.Errorf("rate shock payment %.2f should exceed nominal %.2f",
			rateShock.MonthlyPayment, nominal.MonthlyPayment)
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	in := stressInput()
	rentsBefore := append([]float64(nil), in.Rents...)
	vacancyBefore := in.VacancyRate
	rateBefore := in.AnnualInterestRate

	Run(nil, in)

	if in.VacancyRate != vacancyBefore || in.AnnualInterestRate != rateBefore {
		t.Errorf("scalars mutated: vacancy %.2f, rate %.2f", in.VacancyRate, in.AnnualInterestRate)
	}
	for i, rent := range in.Rents {
		if rent != rentsBefore[i] {
			t.Errorf("rent %d mutated: %.2f -> %.2f", i, rentsBefore[i], rent)
		}
	}
}

func TestRunRentDropLowersGrossRent(t *testing.T) {
	scenarios := Run(nil, stressInput())

	nominal := scenarios[0].Results
	rentDrop := scenarios[3].Results
	expected := nominal.MonthlyGrossRent * 0.9
	if diff := rentDrop.MonthlyGrossRent - expected; diff > 0.01 || diff < -0.01 {
		t.Errorf("rent drop gross rent = %.2f, expected %.2f", rentDrop.MonthlyGrossRent, expected)
	}
}
