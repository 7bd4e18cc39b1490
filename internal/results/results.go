// Package results turns an investment description into the aggregated
// financial metrics consumed by callers: totals, yields, cashflow, tax
// assessment, and the 20-year wealth projection.
package results

import (
	"math"

	"go.uber.org/zap"

	"immoforecast/internal/simulation"
	"immoforecast/pkg/constants"
	"immoforecast/pkg/mortgage"
	"immoforecast/pkg/rental"
	"immoforecast/pkg/tax"
)

// YearPoint is one record of the wealth projection series.
type YearPoint struct {
	Year               int        `json:"year"`
	RemainingDebt      float64    `json:"remainingDebt"`
	InterestPaid       float64    `json:"interestPaid"`
	AmortizationBase   float64    `json:"amortizationBase"`
	Tax                float64    `json:"tax"`
	BestRegime         tax.Regime `json:"bestRegime"`
	CumulativeCashflow float64    `json:"cumulativeCashflow"`
	NetWorth           float64    `json:"netWorth"`
}

// Result aggregates every derived metric for one simulation. Immutable
// per computation; recomputed from scratch on every input change.
type Result struct {
	InvestmentTotal float64 `json:"investissementTotal"`
	LoanAmount      float64 `json:"montantAEmprunter"`
	MonthlyPayment  float64 `json:"mCredit"`

	MonthlyGrossRent float64 `json:"recetteMensuelleBrute"`
	MonthlyRealRent  float64 `json:"recetteMensuelleReelle"`
	AnnualRealRent   float64 `json:"recetteAnnuelle"`
	AnnualCharges    float64 `json:"totalChargesAnnuelles"`

	GrossYieldPercent float64 `json:"rBrute"`
	NetYieldPercent   float64 `json:"rNet"`

	// AnnualCashflow and MonthlyCashflow are pre-tax; the after-tax
	// monthly figure is MonthlyCashflowNet. Callers must not conflate
	// the two monthly fields.
	AnnualCashflow     float64 `json:"beneficeAnnuel"`
	MonthlyCashflow    float64 `json:"cashflowM"`
	MonthlyCashflowNet float64 `json:"cashflowNetNet"`

	// First projection year tax figures.
	Tax        float64    `json:"impots"`
	TaxReal    float64    `json:"impotsReel"`
	TaxMicro   float64    `json:"impotsMicro"`
	BestRegime tax.Regime `json:"bestRegime"`

	ProjectionData []YearPoint `json:"projectionData"`
}

// Engine computes results. It holds only a logger; every computation is
// a pure function of its input.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a results engine. A nil logger falls back to a no-op
// logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Calculate derives the full result set for one investment description.
// The input is never mutated and zero-valued edge cases (no loan, no
// duration, no investment) produce defined zero results rather than
// errors, so callers may recompute on transiently invalid input.
func Calculate(in simulation.Input) Result {
	return NewEngine(nil).Calculate(in)
}

// Calculate derives the full result set for one investment description.
func (e *Engine) Calculate(in simulation.Input) Result {
	investmentTotal := mortgage.InvestmentTotal(in.PurchasePrice, in.WorksCost, in.NotaryFees)
	loanAmount := mortgage.LoanAmount(investmentTotal, in.DownPayment)

	monthlyPayment := in.MonthlyPayment
	if in.AutoCredit {
		monthlyPayment = mortgage.MonthlyPayment(loanAmount, in.AnnualInterestRate, in.LoanDurationYears)
	}

	monthlyGrossRent := rental.MonthlyGrossRent(in.Rents)
	monthlyRealRent := rental.MonthlyRealRent(monthlyGrossRent, in.VacancyRate)
	annualRealRent := monthlyRealRent * constants.MonthsPerYear
	annualCharges := rental.AnnualCharges(in.ChargeValues())
	annualLoanCost := monthlyPayment * constants.MonthsPerYear

	yields := rental.ComputeYields(rental.YieldParams{
		InvestmentTotal:  investmentTotal,
		MonthlyGrossRent: monthlyGrossRent,
		AnnualRealRent:   annualRealRent,
		AnnualCharges:    annualCharges,
	})

	annualCashflow := annualRealRent - (annualLoanCost + annualCharges)
	monthlyCashflow := annualCashflow / constants.MonthsPerYear

	// The amortization schedule feeds the per-year tax assessment so
	// interest deductions track the declining balance.
	schedule := mortgage.Schedule(loanAmount, in.AnnualInterestRate, in.LoanDurationYears, monthlyPayment)
	yearTotals := mortgage.AggregateByYear(schedule)

	projection := e.project(in, projectionInputs{
		annualRealRent: annualRealRent,
		annualCharges:  annualCharges,
		annualCashflow: annualCashflow,
		loanAmount:     loanAmount,
		yearTotals:     yearTotals,
	})

	result := Result{
		InvestmentTotal:   investmentTotal,
		LoanAmount:        loanAmount,
		MonthlyPayment:    monthlyPayment,
		MonthlyGrossRent:  monthlyGrossRent,
		MonthlyRealRent:   monthlyRealRent,
		AnnualRealRent:    annualRealRent,
		AnnualCharges:     annualCharges,
		GrossYieldPercent: yields.GrossPercent,
		NetYieldPercent:   yields.NetPercent,
		AnnualCashflow:    annualCashflow,
		MonthlyCashflow:   monthlyCashflow,
		ProjectionData:    projection,
	}

	firstYear := tax.Assess(yearInput(in, 1, annualRealRent, annualCharges, yearTotals))
	result.Tax = firstYear.Tax
	result.TaxReal = firstYear.RealTax
	result.TaxMicro = firstYear.MicroTax
	result.BestRegime = firstYear.BestRegime
	result.MonthlyCashflowNet = monthlyCashflow - firstYear.Tax/constants.MonthsPerYear

	e.logger.Debug("calculated simulation results",
		zap.Float64("investmentTotal", investmentTotal),
		zap.Float64("loanAmount", loanAmount),
		zap.Float64("monthlyCashflow", monthlyCashflow),
		zap.String("bestRegime", string(result.BestRegime)),
	)

	return result
}

type projectionInputs struct {
	annualRealRent float64
	annualCharges  float64
	annualCashflow float64
	loanAmount     float64
	yearTotals     map[int]mortgage.YearTotals
}

// project walks the fixed 20-year horizon. The series is never truncated
// early: once the loan is repaid the remaining debt floors at 0 and the
// projection keeps accruing rent and appreciation.
//
// CumulativeCashflow deliberately multiplies the pre-tax annual profit
// by the year instead of summing post-tax profits; the net-worth series
// is a known simplification preserved for output stability.
func (e *Engine) project(in simulation.Input, inputs projectionInputs) []YearPoint {
	series := make([]YearPoint, 0, constants.ProjectionYears)
	remainingDebt := inputs.loanAmount

	for year := 1; year <= constants.ProjectionYears; year++ {
		interestPaid := 0.0
		if totals, ok := inputs.yearTotals[year]; ok {
			interestPaid = totals.Interest
			remainingDebt = totals.RemainingBalanceAtYearEnd
		} else {
			// Beyond loan payoff (or no loan at all).
			remainingDebt = 0
		}

		assessment := tax.Assess(yearInput(in, year, inputs.annualRealRent, inputs.annualCharges, inputs.yearTotals))

		cumulativeCashflow := inputs.annualCashflow * float64(year)
		assetValue := (in.PurchasePrice + in.WorksCost) * math.Pow(1+constants.AppreciationRate, float64(year))
		netWorth := assetValue - remainingDebt + cumulativeCashflow

		series = append(series, YearPoint{
			Year:               year,
			RemainingDebt:      remainingDebt,
			InterestPaid:       interestPaid,
			AmortizationBase:   assessment.Depreciation,
			Tax:                assessment.Tax,
			BestRegime:         assessment.BestRegime,
			CumulativeCashflow: cumulativeCashflow,
			NetWorth:           netWorth,
		})
	}

	return series
}

func yearInput(in simulation.Input, year int, annualRealRent, annualCharges float64, yearTotals map[int]mortgage.YearTotals) tax.YearInput {
	interestPaid := 0.0
	if totals, ok := yearTotals[year]; ok {
		interestPaid = totals.Interest
	}
	return tax.YearInput{
		Year:                year,
		AnnualRealRent:      annualRealRent,
		AnnualCharges:       annualCharges,
		InterestPaid:        interestPaid,
		PurchasePrice:       in.PurchasePrice,
		NotaryFees:          in.NotaryFees,
		WorksCost:           in.WorksCost,
		MarginalRatePercent: in.MarginalTaxRate,
	}
}
