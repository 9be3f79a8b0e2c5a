package services

import (
	"time"

	"fincontrol/internal/aggregation"
	apperrors "fincontrol/internal/errors"
)

// dashboardService builds the monthly overview. Nothing is cached; every
// call aggregates the current collections.
type dashboardService struct {
	store *Store
	now   func() time.Time
}

// NewDashboardService creates a new DashboardServicer. now defaults to
// time.Now.
func NewDashboardService(store *Store, now func() time.Time) DashboardServicer {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{store: store, now: now}
}

// CurrentPeriod returns the month of the current local date.
func (s *dashboardService) CurrentPeriod() Period {
	t := s.now()
	return Period{Year: t.Year(), Month: int(t.Month())}
}

// GetDashboard aggregates the given month. A zero year or month means the
// current one.
func (s *dashboardService) GetDashboard(year, month int) (*Dashboard, error) {
	current := s.CurrentPeriod()
	if year == 0 {
		year = current.Year
	}
	if month == 0 {
		month = current.Month
	}
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year or month")
	}

	m := time.Month(month)
	txs := s.store.Transactions()
	monthTxs := aggregation.Filter(txs, aggregation.InMonth(year, m))
	ref := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)

	return &Dashboard{
		Period:            Period{Year: year, Month: month},
		Label:             aggregation.MonthLabel(year, m),
		PrevMonth:         shiftPeriod(ref, -1),
		NextMonth:         shiftPeriod(ref, 1),
		Summary:           aggregation.Summarize(monthTxs, nil),
		ExpenseByCategory: aggregation.GroupByCategory(monthTxs),
		ExpenseByType:     aggregation.GroupByType(monthTxs),
		History:           aggregation.MonthlyHistory(txs, aggregation.DefaultHistoryMonths, ref),
		Goals:             goalViews(s.store.Goals()),
		Transactions:      aggregation.SortByDateDesc(monthTxs),
	}, nil
}

func shiftPeriod(ref time.Time, months int) Period {
	t := ref.AddDate(0, months, 0)
	return Period{Year: t.Year(), Month: int(t.Month())}
}
