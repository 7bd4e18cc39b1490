// Package report renders a simulation's results as a PDF summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"immoforecast/internal/results"
	"immoforecast/pkg/bankability"
	"immoforecast/pkg/format"
)

// pdfText converts UTF-8 text to PDF-safe encoding. The standard fonts
// expect cp1252: the euro sign maps to 0x80 and the fr-FR no-break
// spaces degrade to plain spaces.
func pdfText(s string) string {
	s = strings.ReplaceAll(s, "€", "\x80")
	s = strings.ReplaceAll(s, "\u202f", " ")
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return s
}

func euro(amount float64) string {
	return pdfText(format.Euro(amount))
}

// Generate writes a one-page PDF report for a named simulation result:
// KPI summary, first-year tax detail, the borrower's bankability readout
// when a profile is configured, and the 20-year projection table.
func Generate(w io.Writer, name string, r results.Result, indicator *bankability.Indicator) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(pdfText("Simulation locative - "+name), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, pdfText("Simulation locative - "+name), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Indicateurs", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	kpis := []struct {
		label string
		value string
	}{
		{"Investissement total", euro(r.InvestmentTotal)},
		{"Montant emprunté", euro(r.LoanAmount)},
		{"Mensualité de crédit", pdfText(format.EuroCents(r.MonthlyPayment))},
		{"Rentabilité brute", pdfText(format.Percent(r.GrossYieldPercent))},
		{"Rentabilité nette", pdfText(format.Percent(r.NetYieldPercent))},
		{"Cashflow mensuel avant impôt", pdfText(format.EuroCents(r.MonthlyCashflow))},
		{"Cashflow mensuel net-net", pdfText(format.EuroCents(r.MonthlyCashflowNet))},
	}
	for _, kpi := range kpis {
		pdf.CellFormat(80, 6, pdfText(kpi.label), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, kpi.value, "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, pdfText("Fiscalité (première année)"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(80, 6, pdfText("Régime réel"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, euro(r.TaxReal), "", 1, "R", false, 0, "")
	pdf.CellFormat(80, 6, "Micro-BIC", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, euro(r.TaxMicro), "", 1, "R", false, 0, "")
	pdf.CellFormat(80, 6, pdfText("Régime retenu"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, string(r.BestRegime), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	if indicator != nil {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, pdfText("Bancabilité"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(80, 6, pdfText("Taux d'endettement"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, pdfText(format.Percent(indicator.DebtRatioPercent)), "", 1, "R", false, 0, "")
		pdf.CellFormat(80, 6, pdfText("Reste à vivre"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, pdfText(format.EuroCents(indicator.ResidualIncome)), "", 1, "R", false, 0, "")
		pdf.CellFormat(80, 6, "Statut", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, string(indicator.Status), "", 1, "R", false, 0, "")
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Projection sur 20 ans", "", 1, "L", false, 0, "")

	headers := []string{"Année", "Dette restante", "Intérêts", "Impôt", "Régime", "Patrimoine net"}
	widths := []float64{18, 36, 30, 30, 22, 40}
	pdf.SetFont("Helvetica", "B", 9)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 6, pdfText(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, point := range r.ProjectionData {
		pdf.CellFormat(widths[0], 5.5, fmt.Sprintf("%d", point.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 5.5, euro(point.RemainingDebt), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 5.5, euro(point.InterestPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 5.5, euro(point.Tax), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 5.5, string(point.BestRegime), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 5.5, euro(point.NetWorth), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
