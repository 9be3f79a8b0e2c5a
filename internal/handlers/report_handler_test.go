package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/services"
)

func setupReportRouter(svc services.ReportServicer) *gin.Engine {
	h := NewReportHandler(svc)
	r := gin.New()
	r.GET("/reports", h.GetReport)
	r.GET("/reports/csv", h.ExportCSV)
	r.GET("/reports/pdf", h.ExportPDF)
	return r
}

func TestReportHandler_GetReport(t *testing.T) {
	var gotStart, gotEnd string
	svc := &mockReportService{
		buildFn: func(start, end string) (*services.Report, error) {
			gotStart, gotEnd = start, end
			return &services.Report{StartDate: start, EndDate: end}, nil
		},
	}
	rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports?start=2024-05-01&end=2024-05-31", "")
	assertStatus(t, rec, http.StatusOK)

	assert.Equal(t, "2024-05-01", gotStart)
	assert.Equal(t, "2024-05-31", gotEnd)
	assert.Equal(t, "2024-05-01", parseJSON(t, rec)["startDate"])
}

func TestReportHandler_ExportCSV(t *testing.T) {
	t.Run("download headers", func(t *testing.T) {
		svc := &mockReportService{
			csvFn: func(start, end string, w io.Writer) (string, error) {
				_, _ = io.WriteString(w, "Data,Descrição,Tipo,Categoria,Valor")
				return "relatorio_financeiro_" + start + "_" + end + ".csv", nil
			},
		}
		rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports/csv?start=2024-05-01&end=2024-05-31", "")
		assertStatus(t, rec, http.StatusOK)

		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="relatorio_financeiro_2024-05-01_2024-05-31.csv"`, rec.Header().Get("Content-Disposition"))
		assert.True(t, strings.HasPrefix(rec.Body.String(), "Data,"), "unexpected body %q", rec.Body.String())
	})

	t.Run("invalid date returns JSON error", func(t *testing.T) {
		svc := &mockReportService{
			csvFn: func(string, string, io.Writer) (string, error) {
				return "", apperrors.ErrInvalidDate
			},
		}
		rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports/csv?start=bad", "")
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_DATE")
		assert.Empty(t, rec.Header().Get("Content-Disposition"), "no attachment header on error")
	})
}

func TestReportHandler_ExportPDF(t *testing.T) {
	svc := &mockReportService{
		pdfFn: func(string, string, io.Writer) (string, error) { return "r.pdf", nil },
	}
	rec := doRequest(setupReportRouter(svc), http.MethodGet, "/reports/pdf", "")
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
}
