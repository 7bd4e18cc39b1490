// Package rental combines acquisition totals, rent, vacancy, and charges
// into yield and cashflow figures.
package rental

import "immoforecast/pkg/constants"

// YieldParams carries the inputs for a yield computation.
type YieldParams struct {
	InvestmentTotal  float64
	MonthlyGrossRent float64
	AnnualRealRent   float64
	AnnualCharges    float64
}

// Yields holds gross and net rental yields in percent.
type Yields struct {
	GrossPercent float64
	NetPercent   float64
}

// ComputeYields calculates the gross and net rental yields. A zero or
// negative investment total yields {0, 0}; the guard is explicit so that
// no NaN or Infinity ever escapes to a caller rendering live input.
func ComputeYields(params YieldParams) Yields {
	if params.InvestmentTotal <= 0 {
		return Yields{}
	}
	return Yields{
		GrossPercent: (params.MonthlyGrossRent * constants.MonthsPerYear / params.InvestmentTotal) * constants.PercentageMultiplier,
		NetPercent:   ((params.AnnualRealRent - params.AnnualCharges) / params.InvestmentTotal) * constants.PercentageMultiplier,
	}
}

// MonthlyGrossRent sums the per-unit monthly rents.
func MonthlyGrossRent(rents []float64) float64 {
	total := 0.0
	for _, rent := range rents {
		total += rent
	}
	return total
}

// MonthlyRealRent discounts the gross rent by the vacancy rate, expressed
// in percent of gross rent lost to vacancy and non-payment.
func MonthlyRealRent(monthlyGrossRent, vacancyRatePercent float64) float64 {
	return monthlyGrossRent * (1 - vacancyRatePercent/constants.PercentageMultiplier)
}

// AnnualCharges sums the annual value of every recurring charge.
func AnnualCharges(values []float64) float64 {
	total := 0.0
	for _, value := range values {
		total += value
	}
	return total
}
