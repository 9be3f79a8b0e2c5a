package services

import (
	"io"
	"time"

	"fincontrol/internal/aggregation"
	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/models"
	"fincontrol/internal/report"
)

// reportService builds date-range reports and their file exports.
type reportService struct {
	store *Store
	now   func() time.Time
}

// NewReportService creates a new ReportServicer. now defaults to time.Now.
func NewReportService(store *Store, now func() time.Time) ReportServicer {
	if now == nil {
		now = time.Now
	}
	return &reportService{store: store, now: now}
}

// BuildReport covers start..end inclusive. An empty start is the first day
// of the current month and an empty end is today.
func (s *reportService) BuildReport(start, end string) (*Report, error) {
	start, end, err := s.resolveRange(start, end)
	if err != nil {
		return nil, err
	}

	txs := aggregation.SortByDateDesc(aggregation.FilterByDateRange(s.store.Transactions(), start, end))
	return &Report{
		StartDate:         start,
		EndDate:           end,
		Summary:           aggregation.Summarize(txs, nil),
		ExpenseByCategory: aggregation.GroupByCategory(txs),
		Transactions:      txs,
	}, nil
}

// ExportCSV writes the report rows as CSV and returns the download filename.
func (s *reportService) ExportCSV(start, end string, w io.Writer) (string, error) {
	r, err := s.BuildReport(start, end)
	if err != nil {
		return "", err
	}
	if err := report.WriteCSV(w, r.Transactions); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return report.Filename(r.StartDate, r.EndDate, "csv"), nil
}

// ExportPDF writes the report rows as a PDF table and returns the download
// filename.
func (s *reportService) ExportPDF(start, end string, w io.Writer) (string, error) {
	r, err := s.BuildReport(start, end)
	if err != nil {
		return "", err
	}
	if err := report.WritePDF(w, r.Transactions, r.StartDate, r.EndDate); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return report.Filename(r.StartDate, r.EndDate, "pdf"), nil
}

func (s *reportService) resolveRange(start, end string) (string, string, error) {
	now := s.now()
	if start == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(models.DateLayout)
	}
	if end == "" {
		end = now.Format(models.DateLayout)
	}
	if !models.IsValidDate(start) {
		return "", "", apperrors.WithMessage(apperrors.ErrInvalidDate, "start must use the YYYY-MM-DD format")
	}
	if !models.IsValidDate(end) {
		return "", "", apperrors.WithMessage(apperrors.ErrInvalidDate, "end must use the YYYY-MM-DD format")
	}
	return start, end, nil
}
