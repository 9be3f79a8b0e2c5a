package models

import "time"

// DateLayout is the ISO calendar date format used for every stored date.
const DateLayout = "2006-01-02"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome          TransactionType = "INCOME"
	TransactionTypeFixedExpense    TransactionType = "FIXED_EXPENSE"
	TransactionTypeVariableExpense TransactionType = "VARIABLE_EXPENSE"
	TransactionTypeInvestment      TransactionType = "INVESTMENT"
)

// TransactionTypes lists the supported types in display order.
var TransactionTypes = []TransactionType{
	TransactionTypeIncome,
	TransactionTypeFixedExpense,
	TransactionTypeVariableExpense,
	TransactionTypeInvestment,
}

// IsValid reports whether t is one of the four supported types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypeIncome, TransactionTypeFixedExpense, TransactionTypeVariableExpense, TransactionTypeInvestment:
		return true
	}
	return false
}

// IsExpense reports whether t counts as spending in category and type breakdowns.
func (t TransactionType) IsExpense() bool {
	return t == TransactionTypeFixedExpense || t == TransactionTypeVariableExpense
}

// Label returns the pt-BR display label.
func (t TransactionType) Label() string {
	switch t {
	case TransactionTypeIncome:
		return "Receita"
	case TransactionTypeFixedExpense:
		return "Despesa Fixa"
	case TransactionTypeVariableExpense:
		return "Despesa Variável"
	case TransactionTypeInvestment:
		return "Investimento/Poupança"
	default:
		return "Desconhecido"
	}
}

// Transaction represents a single dated money movement.
// JSON names match the stored collection format.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	DocumentURL string          `json:"documentUrl,omitempty"`
	GoalID      string          `json:"goalId,omitempty"`
}

// IsInvestment reports whether the transaction can contribute to a goal.
func (t Transaction) IsInvestment() bool {
	return t.Type == TransactionTypeInvestment
}

// LinkedGoalID returns the goal this transaction contributes to, or "" when
// it contributes to none.
func (t Transaction) LinkedGoalID() string {
	if !t.IsInvestment() {
		return ""
	}
	return t.GoalID
}

// YearMonth splits the ISO date into its year and month without going
// through time zones. ok is false for malformed dates.
func (t Transaction) YearMonth() (year int, month time.Month, ok bool) {
	return ParseYearMonth(t.Date)
}

// ParseYearMonth reads the YYYY-MM prefix of an ISO date.
func ParseYearMonth(date string) (int, time.Month, bool) {
	if len(date) < 7 || date[4] != '-' {
		return 0, 0, false
	}
	year, ok := atoi(date[0:4])
	if !ok {
		return 0, 0, false
	}
	month, ok := atoi(date[5:7])
	if !ok || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func atoi(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
