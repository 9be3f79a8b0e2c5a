package report

import (
	"io"
	"strings"

	"fincontrol/internal/models"
)

// WriteCSV writes the header and one row per transaction. Text columns are
// always quoted and the amount column never is, so spreadsheet apps read the
// decimal comma as part of the number. Lines end in "\n" with no trailing
// newline after the last row.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	var b strings.Builder
	b.WriteString(strings.Join(Columns, ","))
	for _, t := range txs {
		b.WriteByte('\n')
		b.WriteString(FormatDate(t.Date))
		b.WriteByte(',')
		b.WriteString(quote(t.Description))
		b.WriteByte(',')
		b.WriteString(quote(t.Type.Label()))
		b.WriteByte(',')
		b.WriteString(quote(string(t.Category)))
		b.WriteByte(',')
		b.WriteString(FormatAmount(t))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
