// Package report assembles a DocumentAnalysis into a downloadable PDF.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"clauselens/internal/models"
)

// rgb is a risk badge color.
type rgb struct{ r, g, b int }

var riskColors = map[string]rgb{
	models.RiskLow:    {46, 125, 50},
	models.RiskMedium: {230, 126, 34},
	models.RiskHigh:   {192, 57, 43},
}

var gaugeColors = map[string]rgb{
	models.GaugeLow:      {46, 125, 50},
	models.GaugeModerate: {230, 126, 34},
	models.GaugeHigh:     {192, 57, 43},
}

// BuildPDF serializes an analysis to PDF. Layout is a straight mapping of
// the structured fields onto heading/paragraph primitives; no custom
// layout logic.
func BuildPDF(analysis *models.DocumentAnalysis, siteTitle string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(analysis.Title), true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 9, tr(analysis.Title), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(110, 110, 110)
	header := siteTitle + " risk report"
	if analysis.DocType != "" {
		header += " - " + analysis.DocType
	}
	if !analysis.CreatedAt.IsZero() {
		header += " - " + analysis.CreatedAt.Format("2006-01-02 15:04")
	}
	pdf.MultiCell(0, 5, tr(header), "", "L", false)
	pdf.Ln(4)

	// Risk gauge
	gauge := gaugeColors[analysis.Gauge]
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(40, 8, "Overall risk:", "", 0, "L", false, 0, "")
	pdf.SetTextColor(gauge.r, gauge.g, gauge.b)
	pdf.CellFormat(0, 8, tr(analysis.Gauge), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d flagged clauses", analysis.ClauseCount), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Document summary
	if analysis.Summary != "" {
		writeHeading(pdf, tr, "Summary")
		writeParagraph(pdf, tr, analysis.Summary)
	}

	// Per-category sections
	for _, cat := range analysis.Categories {
		writeHeading(pdf, tr, cat.Category)

		badge := riskColors[cat.RiskLevel]
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(badge.r, badge.g, badge.b)
		pdf.CellFormat(0, 6, tr(cat.RiskLevel+" risk"), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		if cat.Summary != "" {
			writeParagraph(pdf, tr, cat.Summary)
		}

		for _, clause := range cat.Clauses {
			writeClause(pdf, tr, clause)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeading(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 7, tr(text), "", "L", false)
}

func writeParagraph(pdf *fpdf.Fpdf, tr func(string) string, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(0, 5, tr(text), "", "L", false)
	pdf.Ln(2)
}

func writeClause(pdf *fpdf.Fpdf, tr func(string) string, clause models.Clause) {
	badge := riskColors[clause.RiskLevel]
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(badge.r, badge.g, badge.b)
	label := "[" + clause.RiskLevel + "]"
	if clause.Location != "" {
		label += " " + clause.Location
	}
	pdf.CellFormat(0, 5, tr(label), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(40, 40, 40)
	pdf.SetX(pdf.GetX() + 4)
	pdf.MultiCell(0, 4.5, tr(clause.Text), "", "L", false)

	if len(clause.MatchedPhrases) > 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.SetX(pdf.GetX() + 4)
		pdf.MultiCell(0, 4, tr("Matched: "+strings.Join(clause.MatchedPhrases, ", ")), "", "L", false)
	}
	pdf.Ln(1)
}
