// Package bankability estimates how a lender would read a borrower's
// file: debt-service ratio and residual income after the new loan.
package bankability

import "immoforecast/pkg/constants"

// Status buckets the file the way a broker would present it.
type Status string

const (
	StatusGreen  Status = "green"
	StatusOrange Status = "orange"
	StatusRed    Status = "red"
)

const (
	// RentWeight is the share of real rental income banks count toward
	// repayment capacity.
	RentWeight = 0.7

	// GreenThresholdPercent is the HCSF debt-service ceiling.
	GreenThresholdPercent = 35.0

	// OrangeThresholdPercent is the tolerance band above the ceiling.
	OrangeThresholdPercent = 38.0
)

// Profile describes the borrower's existing monthly position.
type Profile struct {
	MonthlyIncome float64
	MonthlyDebt   float64
}

// Declared reports whether the borrower supplied a profile at all. An
// empty profile disables the indicator rather than producing a red file.
func (p Profile) Declared() bool {
	return p.MonthlyIncome > 0 || p.MonthlyDebt > 0
}

// Indicator is the lender-facing readout.
type Indicator struct {
	DebtRatioPercent float64 `json:"tauxEndettement"`
	ResidualIncome   float64 `json:"resteAVivre"`
	Status           Status  `json:"status"`
}

// Evaluate computes the debt-service ratio with the new mortgage payment
// included, counting a weighted share of the real rent as income. A
// borrower with no declared income yields a red file, not a division by
// zero.
func Evaluate(profile Profile, monthlyPayment, monthlyRealRent float64) Indicator {
	income := profile.MonthlyIncome + monthlyRealRent*RentWeight
	if income <= 0 {
		return Indicator{DebtRatioPercent: 0, ResidualIncome: 0, Status: StatusRed}
	}

	debt := profile.MonthlyDebt + monthlyPayment
	ratio := debt / income * constants.PercentageMultiplier

	indicator := Indicator{
		DebtRatioPercent: ratio,
		ResidualIncome:   income - debt,
	}
	switch {
	case ratio <= GreenThresholdPercent:
		indicator.Status = StatusGreen
	case ratio <= OrangeThresholdPercent:
		indicator.Status = StatusOrange
	default:
		indicator.Status = StatusRed
	}
	return indicator
}
