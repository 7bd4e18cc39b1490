// Package output provides utilities for formatting and displaying
// simulation results.
package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"immoforecast/internal/results"
	"immoforecast/pkg/bankability"
	"immoforecast/pkg/format"
	"immoforecast/pkg/mathutil"
)

// Named pairs a simulation name with its computed results and, when a
// borrower profile is configured, the bankability indicator.
type Named struct {
	Name        string
	Result      results.Result
	Bankability *bankability.Indicator
}

// PrettyFormat outputs a human-readable summary and projection table for
// each simulation.
func PrettyFormat(items []Named) {
	p := message.NewPrinter(language.French)
	for i, item := range items {
		fmt.Printf("--- Results for simulation %s ---\n", item.Name)
		r := item.Result
		fmt.Printf("Investment total:   %s\n", format.Euro(r.InvestmentTotal))
		fmt.Printf("Loan amount:        %s\n", format.Euro(r.LoanAmount))
		fmt.Printf("Monthly payment:    %s\n", format.EuroCents(r.MonthlyPayment))
		fmt.Printf("Gross yield:        %s\n", format.Percent(r.GrossYieldPercent))
		fmt.Printf("Net yield:          %s\n", format.Percent(r.NetYieldPercent))
		fmt.Printf("Cashflow (pre-tax): %s / month\n", format.EuroCents(r.MonthlyCashflow))
		netLine := format.EuroCents(r.MonthlyCashflowNet) + " / month"
		if mathutil.IsNegative(r.MonthlyCashflowNet) {
			netLine += " (deficit)"
		}
		fmt.Printf("Cashflow (net-net): %s\n", netLine)
		_, _ = p.Printf("First-year tax:     %.2f (%s regime)\n", r.Tax, r.BestRegime)
		if item.Bankability != nil {
			fmt.Printf("Debt-service ratio: %s (%s)\n",
				format.Percent(item.Bankability.DebtRatioPercent), item.Bankability.Status)
			fmt.Printf("Residual income:    %s / month\n", format.EuroCents(item.Bankability.ResidualIncome))
		}
		fmt.Printf("\n")
		fmt.Printf("Year | Remaining debt | Interest   | Tax        | Regime | Net worth\n")
		fmt.Printf("____ | ______________ | ________   | ___        | ______ | _________\n")
		for _, point := range r.ProjectionData {
			_, _ = p.Printf("%4d | %14.2f | %10.2f | %10.2f | %-6s | %.2f\n",
				point.Year, point.RemainingDebt, point.InterestPaid,
				point.Tax, point.BestRegime, point.NetWorth)
		}
		if i < len(items)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs the projection series in comma-separated value
// format, one block of columns per simulation.
func CsvFormat(items []Named) {
	fmt.Printf(`"year"`)
	for _, item := range items {
		for _, column := range []string{"remainingDebt", "interest", "tax", "regime", "cumulativeCashflow", "netWorth"} {
			fmt.Printf(`,"%s (%s)"`, column, item.Name)
		}
	}
	fmt.Printf("\n")

	rows := 0
	for _, item := range items {
		if len(item.Result.ProjectionData) > rows {
			rows = len(item.Result.ProjectionData)
		}
	}

	for row := 0; row < rows; row++ {
		fmt.Printf(`"%d"`, row+1)
		for _, item := range items {
			if row >= len(item.Result.ProjectionData) {
				fmt.Print(strings.Repeat(`,""`, 6))
				continue
			}
			point := item.Result.ProjectionData[row]
			fmt.Printf(`,"%.2f","%.2f","%.2f","%s","%.2f","%.2f"`,
				point.RemainingDebt, point.InterestPaid, point.Tax,
				point.BestRegime, point.CumulativeCashflow, point.NetWorth)
		}
		fmt.Printf("\n")
	}
}
