package models

// Summary holds the per-period totals. It is always derived from the
// transaction collection and never stored.
type Summary struct {
	TotalIncome           float64 `json:"totalIncome"`
	TotalFixedExpenses    float64 `json:"totalFixedExpenses"`
	TotalVariableExpenses float64 `json:"totalVariableExpenses"`
	TotalInvestments      float64 `json:"totalInvestments"`
	NetBalance            float64 `json:"netBalance"`
}

// CategoryTotal is one slice of the expense-by-category breakdown.
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

// TypeTotal is one slice of the fixed vs variable breakdown.
type TypeTotal struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
}

// MonthBucket accumulates one calendar month of history.
type MonthBucket struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	Investment float64 `json:"investment"`
}
