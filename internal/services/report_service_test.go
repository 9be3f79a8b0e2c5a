package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincontrol/internal/testutil"
)

func TestBuildReport(t *testing.T) {
	t.Run("explicit_range", func(t *testing.T) {
		svc := NewReportService(dashboardFixture(), nil)

		r, err := svc.BuildReport("2024-05-01", "2024-05-15")
		require.NoError(t, err)
		require.Len(t, r.Transactions, 3)
		assert.Equal(t, "2024-05-15", r.Transactions[0].Date, "newest first")
		assert.InDelta(t, 3100, r.Summary.NetBalance, 1e-9)
		assert.Len(t, r.ExpenseByCategory, 2)
	})

	t.Run("default_range_is_month_to_date", func(t *testing.T) {
		svc := NewReportService(dashboardFixture(), fixedClock(2024, time.May, 10))

		r, err := svc.BuildReport("", "")
		require.NoError(t, err)
		assert.Equal(t, "2024-05-01", r.StartDate)
		assert.Equal(t, "2024-05-10", r.EndDate)
		assert.Len(t, r.Transactions, 2)
	})

	t.Run("invalid_date", func(t *testing.T) {
		svc := NewReportService(dashboardFixture(), nil)
		_, err := svc.BuildReport("01/05/2024", "2024-05-31")
		testutil.AssertAppError(t, err, "INVALID_DATE")
	})
}

func TestExportCSV(t *testing.T) {
	svc := NewReportService(dashboardFixture(), nil)

	var buf bytes.Buffer
	name, err := svc.ExportCSV("2024-05-01", "2024-05-31", &buf)
	require.NoError(t, err)

	assert.Equal(t, "relatorio_financeiro_2024-05-01_2024-05-31.csv", name)
	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5, "header plus 4 rows")
	assert.Equal(t, "Data,Descrição,Tipo,Categoria,Valor", lines[0])
	assert.True(t, strings.HasSuffix(lines[4], "+ 5000,00"), "oldest income row last, got %q", lines[4])
}

func TestExportPDF(t *testing.T) {
	svc := NewReportService(dashboardFixture(), nil)

	var buf bytes.Buffer
	name, err := svc.ExportPDF("2024-05-01", "2024-05-31", &buf)
	require.NoError(t, err)

	assert.Equal(t, "relatorio_financeiro_2024-05-01_2024-05-31.pdf", name)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	_, err = svc.ExportPDF("bad", "2024-05-31", &buf)
	testutil.AssertAppError(t, err, "INVALID_DATE")
}
