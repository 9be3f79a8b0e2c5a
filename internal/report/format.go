// Package report renders transaction listings as CSV and PDF files in the
// pt-BR conventions of the financial report screen.
package report

import (
	"fmt"
	"strings"

	"fincontrol/internal/models"

	"github.com/shopspring/decimal"
)

// Columns is the header shared by both export formats.
var Columns = []string{"Data", "Descrição", "Tipo", "Categoria", "Valor"}

// FormatDate turns an ISO YYYY-MM-DD date into dd/mm/yyyy. It works on the
// string directly, so the day can never shift with the local time zone.
// Anything else is returned unchanged.
func FormatDate(iso string) string {
	if !models.IsValidDate(iso) {
		return iso
	}
	return iso[8:10] + "/" + iso[5:7] + "/" + iso[0:4]
}

// Sign is "+" for income and "-" for every other type.
func Sign(t models.Transaction) string {
	if t.Type == models.TransactionTypeIncome {
		return "+"
	}
	return "-"
}

// FormatAmount renders the amount with two decimals and a decimal comma,
// e.g. "- 12,50".
func FormatAmount(t models.Transaction) string {
	fixed := decimal.NewFromFloat(t.Amount).StringFixed(2)
	return Sign(t) + " " + strings.Replace(fixed, ".", ",", 1)
}

// FormatCurrency renders the amount the way the PDF table shows it,
// e.g. "+ R$ 5000.00".
func FormatCurrency(t models.Transaction) string {
	return Sign(t) + " R$ " + decimal.NewFromFloat(t.Amount).StringFixed(2)
}

// Filename returns the download name for a report over [start, end].
func Filename(start, end, ext string) string {
	return fmt.Sprintf("relatorio_financeiro_%s_%s.%s", start, end, ext)
}

// FormatMoney renders a plain value with two decimals and a decimal comma,
// e.g. "R$ 1234,50". Negative values keep their sign.
func FormatMoney(v float64) string {
	return "R$ " + strings.Replace(decimal.NewFromFloat(v).StringFixed(2), ".", ",", 1)
}
