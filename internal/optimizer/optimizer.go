// Package optimizer answers the reverse question: instead of deriving
// cashflow from a deal, it searches for the deal parameter that reaches
// a target after-tax monthly cashflow.
package optimizer

import (
	"fmt"

	"go.uber.org/zap"

	"immoforecast/internal/results"
	"immoforecast/internal/simulation"
	"immoforecast/pkg/mathutil"
	"immoforecast/pkg/mortgage"
)

// Search bounds and termination, matching the interactive calculator's
// behavior.
const (
	minPurchasePrice = 1000.0
	maxPurchasePrice = 5000000.0
	minUnitRent      = 0.0
	maxUnitRent      = 10000.0
	tolerance        = 1.0
	maxIterations    = 50
)

// Summary reports one optimizer run.
type Summary struct {
	Field      string  `json:"field"`
	Target     float64 `json:"target"`
	Value      float64 `json:"value"`
	Achieved   float64 `json:"achieved"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}

// Runner performs bisection searches over one simulation input.
type Runner struct {
	logger *zap.Logger
	engine *results.Engine
}

// NewRunner constructs a Runner. A nil logger falls back to a no-op.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger, engine: results.NewEngine(logger)}
}

// MaxPurchasePrice finds the highest purchase price whose after-tax
// monthly cashflow still reaches the target. The notary fee is re-derived
// at each probe, the way the live form re-derives it when the price
// changes. Returns an error when the target is out of reach even at the
// lowest admissible price.
func (r *Runner) MaxPurchasePrice(in simulation.Input, targetMonthlyNet float64) (Summary, error) {
	probe := func(trial simulation.Input, price float64) float64 {
		trial.PurchasePrice = price
		trial.NotaryFees = mortgage.NotaryFees(price)
		return r.evaluate(trial)
	}

	floor := probe(in.Clone(), minPurchasePrice)
	if floor < targetMonthlyNet {
		return Summary{Field: "prixAchat", Target: targetMonthlyNet}, fmt.Errorf(
			"target cashflow %.2f unreachable even at price %.0f", targetMonthlyNet, minPurchasePrice)
	}

	// Cashflow decreases as price rises, so bisect keeping the lower
	// bound feasible.
	low, high := minPurchasePrice, maxPurchasePrice
	summary := Summary{Field: "prixAchat", Target: targetMonthlyNet}
	for i := 0; i < maxIterations; i++ {
		mid := (low + high) / 2
		achieved := probe(in.Clone(), mid)
		summary.Value = mid
		summary.Achieved = achieved
		summary.Iterations = i + 1

		if mathutil.WithinTolerance(achieved, targetMonthlyNet, tolerance) {
			summary.Converged = true
			break
		} else if achieved > targetMonthlyNet {
			low = mid
		} else {
			high = mid
		}
	}

	r.logger.Debug("reverse price search finished",
		zap.Float64("target", targetMonthlyNet),
		zap.Float64("price", summary.Value),
		zap.Bool("converged", summary.Converged),
		zap.Int("iterations", summary.Iterations),
	)
	return summary, nil
}

// MinUnitRent finds the lowest per-unit monthly rent whose after-tax
// monthly cashflow reaches the target; every unit is set to the probed
// rent. Returns an error when even the maximum admissible rent falls
// short.
func (r *Runner) MinUnitRent(in simulation.Input, targetMonthlyNet float64) (Summary, error) {
	probe := func(trial simulation.Input, unitRent float64) float64 {
		for i := range trial.Rents {
			trial.Rents[i] = unitRent
		}
		return r.evaluate(trial)
	}

	ceiling := probe(in.Clone(), maxUnitRent)
	if ceiling < targetMonthlyNet {
		return Summary{Field: "loyers", Target: targetMonthlyNet}, fmt.Errorf(
			"target cashflow %.2f unreachable even at rent %.0f per unit", targetMonthlyNet, maxUnitRent)
	}

	low, high := minUnitRent, maxUnitRent
	summary := Summary{Field: "loyers", Target: targetMonthlyNet}
	for i := 0; i < maxIterations; i++ {
		mid := (low + high) / 2
		achieved := probe(in.Clone(), mid)
		summary.Value = mid
		summary.Achieved = achieved
		summary.Iterations = i + 1

		if mathutil.WithinTolerance(achieved, targetMonthlyNet, tolerance) {
			summary.Converged = true
			break
		} else if achieved < targetMonthlyNet {
			low = mid
		} else {
			high = mid
		}
	}

	r.logger.Debug("reverse rent search finished",
		zap.Float64("target", targetMonthlyNet),
		zap.Float64("unitRent", summary.Value),
		zap.Bool("converged", summary.Converged),
		zap.Int("iterations", summary.Iterations),
	)
	return summary, nil
}

func (r *Runner) evaluate(in simulation.Input) float64 {
	return r.engine.Calculate(in).MonthlyCashflowNet
}
