// Package mortgage provides amortizing-loan math for a single property loan.
package mortgage

import (
	"math"

	"immoforecast/pkg/constants"
	"immoforecast/pkg/mathutil"
)

// Payment holds the values for a given monthly payment.
type Payment struct {
	Month            int
	Year             int
	Payment          float64
	Interest         float64
	Principal        float64
	RemainingBalance float64
}

// YearTotals aggregates a loan year for annual-granularity consumers.
type YearTotals struct {
	Interest                  float64
	Principal                 float64
	RemainingBalanceAtYearEnd float64
}

// InvestmentTotal sums the acquisition costs. Non-finite components are
// treated as absent.
func InvestmentTotal(purchasePrice, worksCost, notaryFees float64) float64 {
	return mathutil.SafeNumber(purchasePrice) + mathutil.SafeNumber(worksCost) + mathutil.SafeNumber(notaryFees)
}

// NotaryFees returns the default notary fee for a purchase price. Callers
// may override the result with an explicit figure.
func NotaryFees(purchasePrice float64) float64 {
	return math.Round(purchasePrice * constants.NotaryFeeRate)
}

// LoanAmount returns the amount to borrow, never negative.
func LoanAmount(investmentTotal, downPayment float64) float64 {
	return mathutil.Max(0, investmentTotal-downPayment)
}

// MonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula. A non-positive duration or loan amount is
// a defined edge case yielding 0, not an error, so callers can recompute
// on every input change.
func MonthlyPayment(loanAmount, annualInterestRate float64, durationYears int) float64 {
	if durationYears <= 0 || loanAmount <= 0 {
		return 0
	}

	termMonths := durationYears * constants.MonthsPerYear
	if annualInterestRate == 0 {
		// For zero interest, simply divide the loan amount by term
		return loanAmount / float64(termMonths)
	}

	periodicInterestRate := annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return loanAmount * periodicInterestRate / discountFactor
}

// InterestPayment calculates the interest portion of one monthly payment.
func InterestPayment(remainingBalance, annualInterestRate float64) float64 {
	return remainingBalance * annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// Schedule generates the full amortization schedule for a loan. The
// balance is clamped at zero and generation stops once the loan is repaid,
// which guards against floating-point drift past the natural term. The
// horizon is at most durationYears*12 entries; an under-amortizing
// payment leaves a residual balance at the final month rather than
// pretending the loan was repaid.
func Schedule(loanAmount, annualInterestRate float64, durationYears int, monthlyPayment float64) []Payment {
	if durationYears <= 0 || loanAmount <= 0 || monthlyPayment <= 0 {
		return nil
	}

	termMonths := durationYears * constants.MonthsPerYear
	schedule := make([]Payment, 0, termMonths)
	balance := loanAmount

	for month := 1; month <= termMonths; month++ {
		interest := InterestPayment(balance, annualInterestRate)
		principal := monthlyPayment - interest
		balance -= principal
		if balance < 0 || mathutil.IsZero(balance) {
			// Paid off; zero out rather than carrying machine error.
			balance = 0
		}
		schedule = append(schedule, Payment{
			Month:            month,
			Year:             (month-1)/constants.MonthsPerYear + 1,
			Payment:          monthlyPayment,
			Interest:         interest,
			Principal:        principal,
			RemainingBalance: balance,
		})
		if balance == 0 {
			break
		}
	}

	return schedule
}

// AggregateByYear sums interest and principal per loan year and records
// the balance at the last month processed in that year. Consumers that
// only need annual granularity (the tax assessment) read from here
// instead of re-walking the schedule.
func AggregateByYear(schedule []Payment) map[int]YearTotals {
	totals := make(map[int]YearTotals)
	for _, payment := range schedule {
		yearTotals := totals[payment.Year]
		yearTotals.Interest += payment.Interest
		yearTotals.Principal += payment.Principal
		yearTotals.RemainingBalanceAtYearEnd = payment.RemainingBalance
		totals[payment.Year] = yearTotals
	}
	return totals
}
