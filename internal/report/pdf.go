package report

import (
	"fmt"
	"io"

	"fincontrol/internal/models"

	"github.com/go-pdf/fpdf"
)

// column widths in mm; they add up to the printable width of an A4 page
// with 14mm margins.
var pdfWidths = []float64{22, 60, 34, 44, 22}

const (
	pdfMargin    = 14.0
	pdfRowHeight = 8.0
)

// WritePDF renders the transactions as a titled table covering [start, end].
func WritePDF(w io.Writer, txs []models.Transaction, start, end string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle("Relatório Financeiro", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 18)
	pdf.Text(pdfMargin, 22, tr("Relatório Financeiro"))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(pdfMargin, 30, tr(fmt.Sprintf("Período: %s a %s", FormatDate(start), FormatDate(end))))
	pdf.SetY(40)

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(60, 140, 250)
		pdf.SetTextColor(255, 255, 255)
		for i, col := range Columns {
			align := "L"
			if i == len(Columns)-1 {
				align = "R"
			}
			pdf.CellFormat(pdfWidths[i], pdfRowHeight, tr(col), "1", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, t := range txs {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		cells := []string{
			FormatDate(t.Date),
			t.Description,
			t.Type.Label(),
			string(t.Category),
			FormatCurrency(t),
		}
		for i, text := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(pdfWidths[i], pdfRowHeight, fit(pdf, tr(text), pdfWidths[i]-2), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

// fit shortens s with an ellipsis until it fits in width. s is already
// translated to a single-byte code page, so it is cut byte by byte.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	b := []byte(s)
	for len(b) > 0 {
		b = b[:len(b)-1]
		candidate := string(b) + "..."
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}
