// Package aggregation derives summaries and chart-ready groupings from a
// transaction list. Every function is pure: no state, no I/O, and results are
// recomputed on each call.
package aggregation

import (
	"fmt"
	"sort"
	"time"

	"fincontrol/internal/models"
)

// DefaultHistoryMonths is the window used by the dashboard history chart.
const DefaultHistoryMonths = 6

// Predicate selects the transactions that belong to a period.
type Predicate func(models.Transaction) bool

// InMonth matches transactions dated in the given calendar month. The month
// is read from the ISO string, so no time zone can shift a date.
func InMonth(year int, month time.Month) Predicate {
	return func(t models.Transaction) bool {
		y, m, ok := t.YearMonth()
		return ok && y == year && m == month
	}
}

// InRange matches transactions with start <= date <= end, compared as strings.
func InRange(start, end string) Predicate {
	return func(t models.Transaction) bool {
		return t.Date >= start && t.Date <= end
	}
}

// Filter returns the transactions matching pred, in input order.
// A nil predicate keeps everything.
func Filter(txs []models.Transaction, pred Predicate) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if pred == nil || pred(t) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDateRange keeps transactions dated between start and end inclusive.
func FilterByDateRange(txs []models.Transaction, start, end string) []models.Transaction {
	return Filter(txs, InRange(start, end))
}

// Summarize totals the transactions matching pred by type. Types outside the
// four known ones contribute nothing.
func Summarize(txs []models.Transaction, pred Predicate) models.Summary {
	var s models.Summary
	for _, t := range txs {
		if pred != nil && !pred(t) {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += t.Amount
		case models.TransactionTypeFixedExpense:
			s.TotalFixedExpenses += t.Amount
		case models.TransactionTypeVariableExpense:
			s.TotalVariableExpenses += t.Amount
		case models.TransactionTypeInvestment:
			s.TotalInvestments += t.Amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalFixedExpenses - s.TotalVariableExpenses - s.TotalInvestments
	return s
}

// GroupByCategory sums expense transactions per category in order of first
// appearance. Income and investments are left out, as are empty totals.
func GroupByCategory(txs []models.Transaction) []models.CategoryTotal {
	var order []models.Category
	totals := make(map[models.Category]float64)
	for _, t := range txs {
		if !t.Type.IsExpense() {
			continue
		}
		if _, seen := totals[t.Category]; !seen {
			order = append(order, t.Category)
		}
		totals[t.Category] += t.Amount
	}

	out := make([]models.CategoryTotal, 0, len(order))
	for _, c := range order {
		if totals[c] > 0 {
			out = append(out, models.CategoryTotal{Category: c, Total: totals[c]})
		}
	}
	return out
}

// GroupByType splits expense transactions into fixed and variable totals,
// ordered by first appearance and without empty entries.
func GroupByType(txs []models.Transaction) []models.TypeTotal {
	var order []models.TransactionType
	totals := make(map[models.TransactionType]float64)
	for _, t := range txs {
		if !t.Type.IsExpense() {
			continue
		}
		if _, seen := totals[t.Type]; !seen {
			order = append(order, t.Type)
		}
		totals[t.Type] += t.Amount
	}

	out := make([]models.TypeTotal, 0, len(order))
	for _, typ := range order {
		if totals[typ] > 0 {
			out = append(out, models.TypeTotal{Label: typ.Label(), Total: totals[typ]})
		}
	}
	return out
}

var shortMonths = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

var longMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthLabel renders a month the way the dashboard header shows it,
// e.g. "maio de 2024".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s de %d", longMonths[month-1], year)
}

// MonthlyHistory buckets income, expenses and investments for the monthCount
// months ending at ref's month, oldest first. Transactions outside the window,
// with unreadable dates or with an unknown type are skipped.
func MonthlyHistory(txs []models.Transaction, monthCount int, ref time.Time) []models.MonthBucket {
	if monthCount <= 0 {
		monthCount = DefaultHistoryMonths
	}

	buckets := make([]models.MonthBucket, monthCount)
	index := make(map[[2]int]int, monthCount)
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthCount - 1), 0)
	for i := 0; i < monthCount; i++ {
		d := first.AddDate(0, i, 0)
		buckets[i] = models.MonthBucket{
			Key:   fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month())),
			Label: fmt.Sprintf("%s/%02d", shortMonths[d.Month()-1], d.Year()%100),
			Year:  d.Year(),
			Month: int(d.Month()),
		}
		index[[2]int{d.Year(), int(d.Month())}] = i
	}

	for _, t := range txs {
		y, m, ok := t.YearMonth()
		if !ok {
			continue
		}
		i, ok := index[[2]int{y, int(m)}]
		if !ok {
			continue
		}
		switch {
		case t.Type == models.TransactionTypeIncome:
			buckets[i].Income += t.Amount
		case t.Type == models.TransactionTypeInvestment:
			buckets[i].Investment += t.Amount
		case t.Type.IsExpense():
			buckets[i].Expense += t.Amount
		}
	}
	return buckets
}

// SortByDateDesc returns a copy ordered newest first. Equal dates keep their
// original order.
func SortByDateDesc(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
