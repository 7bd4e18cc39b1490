// Package stress recomputes a simulation under adverse scenarios so a
// buyer can see how fragile the after-tax cashflow is.
package stress

import (
	"immoforecast/internal/results"
	"immoforecast/internal/simulation"
	"immoforecast/pkg/mathutil"
	"immoforecast/pkg/mortgage"
)

// Scenario keys, in display order.
const (
	KeyNominal      = "nominal"
	KeyVacancyShock = "vacancyShock"
	KeyRateShock    = "rateShock"
	KeyRentDrop     = "rentDrop"
)

// Shock magnitudes applied to the nominal input.
const (
	vacancyShockPoints = 10.0
	rateShockPoints    = 1.0
	rentDropFraction   = 0.10
)

// Scenario is one stressed variant with its recomputed results.
type Scenario struct {
	Key     string         `json:"key"`
	Name    string         `json:"name"`
	Results results.Result `json:"results"`
	// DeltaMonthlyNet is the after-tax monthly cashflow change versus
	// the nominal scenario (0 for nominal itself).
	DeltaMonthlyNet float64 `json:"deltaMonthlyNet"`
}

// Run generates the scenario set for an input. Each variant is computed
// on a deep copy; the caller's input is never mutated.
func Run(engine *results.Engine, in simulation.Input) []Scenario {
	if engine == nil {
		engine = results.NewEngine(nil)
	}

	nominal := engine.Calculate(in)
	scenarios := []Scenario{{Key: KeyNominal, Name: "Nominal", Results: nominal}}

	vacancy := in.Clone()
	vacancy.VacancyRate += vacancyShockPoints
	scenarios = append(scenarios, stressed(engine, KeyVacancyShock, "Vacance +10 pts", vacancy, nominal))

	// A rate shock repriced by the bank changes the mensualité too.
	rate := in.Clone()
	rate.AnnualInterestRate += rateShockPoints
	loanAmount := mortgage.LoanAmount(
		mortgage.InvestmentTotal(rate.PurchasePrice, rate.WorksCost, rate.NotaryFees),
		rate.DownPayment,
	)
	rate.MonthlyPayment = mortgage.MonthlyPayment(loanAmount, rate.AnnualInterestRate, rate.LoanDurationYears)
	scenarios = append(scenarios, stressed(engine, KeyRateShock, "Taux +1 pt", rate, nominal))

	rent := in.Clone()
	for i := range rent.Rents {
		rent.Rents[i] *= 1 - rentDropFraction
	}
	scenarios = append(scenarios, stressed(engine, KeyRentDrop, "Loyers -10%", rent, nominal))

	return scenarios
}

func stressed(engine *results.Engine, key, name string, in simulation.Input, nominal results.Result) Scenario {
	res := engine.Calculate(in)
	return Scenario{
		Key:             key,
		Name:            name,
		Results:         res,
		// Cent precision; the delta is a user-facing figure.
		DeltaMonthlyNet: mathutil.Round(res.MonthlyCashflowNet - nominal.MonthlyCashflowNet),
	}
}
