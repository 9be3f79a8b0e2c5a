package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"fincontrol/internal/services"
)

// ReportHandler serves date-range reports and their downloads.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport returns the report as JSON
// @Summary     Report for a date range
// @Description Defaults to the first of the current month through today.
// @Tags        reports
// @Produce     json
// @Security    ApiKeyAuth
// @Param       start query string false "First date (YYYY-MM-DD)"
// @Param       end   query string false "Last date (YYYY-MM-DD)"
// @Success     200 {object} services.Report
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Router      /reports [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.reportService.BuildReport(c.Query("start"), c.Query("end"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportCSV downloads the report as CSV
// @Summary     Export report as CSV
// @Tags        reports
// @Produce     text/csv
// @Security    ApiKeyAuth
// @Param       start query string false "First date (YYYY-MM-DD)"
// @Param       end   query string false "Last date (YYYY-MM-DD)"
// @Success     200 {file} file
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Router      /reports/csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	h.download(c, "text/csv; charset=utf-8", h.reportService.ExportCSV)
}

// ExportPDF downloads the report as PDF
// @Summary     Export report as PDF
// @Tags        reports
// @Produce     application/pdf
// @Security    ApiKeyAuth
// @Param       start query string false "First date (YYYY-MM-DD)"
// @Param       end   query string false "Last date (YYYY-MM-DD)"
// @Success     200 {file} file
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Router      /reports/pdf [get]
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	h.download(c, "application/pdf", h.reportService.ExportPDF)
}

type exportFunc func(start, end string, w io.Writer) (string, error)

// download renders into memory first so a failed export still gets a JSON error.
func (h *ReportHandler) download(c *gin.Context, contentType string, export exportFunc) {
	var buf bytes.Buffer
	filename, err := export(c.Query("start"), c.Query("end"), &buf)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
