// Package tax models French furnished-rental (LMNP) taxation as two
// mutually exclusive regimes and assesses both for a given projection
// year, keeping whichever costs the taxpayer less.
package tax

import (
	"immoforecast/pkg/mathutil"
)

// Regime identifies the elected tax regime for a year.
type Regime string

const (
	// RegimeReal is the simplified real-cost regime (régime réel):
	// charges, loan interest, and depreciation are deducted from rent.
	RegimeReal Regime = "reel"

	// RegimeMicro is the flat-abatement regime (micro-BIC): 50% of rent
	// is taxable, nothing else is deductible.
	RegimeMicro Regime = "micro"
)

const (
	// SocialLevyRatePercent is the fixed social-levy add-on applied on
	// top of the marginal income tax rate. Not configurable.
	SocialLevyRatePercent = 17.2

	// MicroAbatement is the flat micro-BIC abatement on rental income.
	MicroAbatement = 0.5

	// BuildingShare is the fraction of the purchase price treated as
	// depreciable building value (the rest is land, never depreciated).
	BuildingShare = 0.85

	// BuildingDepreciationYears spreads building and notary depreciation.
	BuildingDepreciationYears = 30

	// WorksDepreciationYears spreads works and furnishing depreciation.
	WorksDepreciationYears = 10
)

// MarginalRates lists the legal marginal income tax brackets.
var MarginalRates = []float64{0, 11, 30, 41, 45}

// ValidMarginalRate reports whether a rate is one of the legal brackets.
func ValidMarginalRate(rate float64) bool {
	for _, bracket := range MarginalRates {
		if rate == bracket {
			return true
		}
	}
	return false
}

// YearInput carries everything needed to assess one projection year.
type YearInput struct {
	Year                int
	AnnualRealRent      float64
	AnnualCharges       float64
	InterestPaid        float64
	PurchasePrice       float64
	NotaryFees          float64
	WorksCost           float64
	MarginalRatePercent float64
}

// Assessment is the outcome of assessing both regimes for one year.
type Assessment struct {
	RealTax      float64
	MicroTax     float64
	Tax          float64
	BestRegime   Regime
	Depreciation float64
}

// Depreciation returns the depreciation deductible under the real regime
// for a given loan year. Building depreciation runs for 30 years on 85%
// of the purchase price plus notary fees; works depreciation runs for 10
// years.
func Depreciation(year int, purchasePrice, notaryFees, worksCost float64) float64 {
	depreciation := 0.0
	if year >= 1 && year <= BuildingDepreciationYears {
		depreciation += (purchasePrice*BuildingShare + notaryFees) / BuildingDepreciationYears
	}
	if year >= 1 && year <= WorksDepreciationYears {
		depreciation += worksCost / WorksDepreciationYears
	}
	return depreciation
}

// Assess computes the tax owed under both regimes for one year and picks
// the cheaper one, which is the election a rational taxpayer makes.
func Assess(in YearInput) Assessment {
	ratePercent := in.MarginalRatePercent + SocialLevyRatePercent

	depreciation := Depreciation(in.Year, in.PurchasePrice, in.NotaryFees, in.WorksCost)
	realBase := mathutil.Max(0, in.AnnualRealRent-in.AnnualCharges-in.InterestPaid-depreciation)
	realTax := mathutil.ApplyPercentage(realBase, ratePercent)

	// Non-negative by construction as long as rent is non-negative.
	microBase := in.AnnualRealRent * MicroAbatement
	microTax := mathutil.ApplyPercentage(microBase, ratePercent)

	assessment := Assessment{
		RealTax:      realTax,
		MicroTax:     microTax,
		Tax:          mathutil.Min(realTax, microTax),
		Depreciation: depreciation,
	}
	if realTax < microTax {
		assessment.BestRegime = RegimeReal
	} else {
		assessment.BestRegime = RegimeMicro
	}
	return assessment
}
