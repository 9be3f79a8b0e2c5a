package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategoriesFor(t *testing.T) {
	t.Run("income_partition", func(t *testing.T) {
		assert.Equal(t, []Category{CategoryIncomeSource, CategoryUncategorized}, CategoriesFor(TransactionTypeIncome))
	})

	t.Run("expense_partition_excludes_income_source", func(t *testing.T) {
		cats := CategoriesFor(TransactionTypeVariableExpense)
		assert.Len(t, cats, len(Categories)-1)
		assert.NotContains(t, cats, CategoryIncomeSource)
		assert.Contains(t, cats, CategoryUncategorized)
		assert.Contains(t, cats, CategoryInvestmentsSavings)
	})
}

func TestDefaultCategory(t *testing.T) {
	assert.Equal(t, CategoryIncomeSource, DefaultCategory(TransactionTypeIncome))
	assert.Equal(t, CategoryInvestmentsSavings, DefaultCategory(TransactionTypeInvestment))
	assert.Equal(t, CategoryUncategorized, DefaultCategory(TransactionTypeFixedExpense))
	assert.Equal(t, CategoryUncategorized, DefaultCategory(TransactionTypeVariableExpense))
}

func TestAllowsCategory(t *testing.T) {
	assert.True(t, AllowsCategory(TransactionTypeIncome, CategoryIncomeSource))
	assert.False(t, AllowsCategory(TransactionTypeIncome, CategoryFood))
	assert.False(t, AllowsCategory(TransactionTypeFixedExpense, CategoryIncomeSource))
	assert.True(t, AllowsCategory(TransactionTypeFixedExpense, CategoryRentHomeLoan))
	assert.False(t, AllowsCategory(TransactionTypeFixedExpense, Category("Viagens")))
}

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Category
		ok    bool
	}{
		{"exact", "Cinema", CategoryCinema, true},
		{"case_insensitive_substring", "supermercado", CategorySupermarket, true},
		{"first_containing_label_wins", "transporte", CategoryTransport, true},
		{"no_match", "Viagens internacionais", "", false},
		{"blank", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionTypeLabel(t *testing.T) {
	assert.Equal(t, "Receita", TransactionTypeIncome.Label())
	assert.Equal(t, "Despesa Fixa", TransactionTypeFixedExpense.Label())
	assert.Equal(t, "Despesa Variável", TransactionTypeVariableExpense.Label())
	assert.Equal(t, "Investimento/Poupança", TransactionTypeInvestment.Label())
	assert.Equal(t, "Desconhecido", TransactionType("TRANSFER").Label())
	assert.False(t, TransactionType("TRANSFER").IsValid())
}

func TestParseYearMonth(t *testing.T) {
	y, m, ok := ParseYearMonth("2024-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.March, m)

	_, _, ok = ParseYearMonth("2024-13-01")
	assert.False(t, ok)
	_, _, ok = ParseYearMonth("15/03/2024")
	assert.False(t, ok)
	_, _, ok = ParseYearMonth("")
	assert.False(t, ok)
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-2-1"))
	assert.False(t, IsValidDate("2024-02-01T00:00:00Z"))
}

func TestLinkedGoalID(t *testing.T) {
	inv := Transaction{Type: TransactionTypeInvestment, GoalID: "g1"}
	assert.Equal(t, "g1", inv.LinkedGoalID())

	exp := Transaction{Type: TransactionTypeVariableExpense, GoalID: "g1"}
	assert.Equal(t, "", exp.LinkedGoalID())
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name      string
		goal      Goal
		progress  float64
		completed bool
		remaining float64
	}{
		{"partial", Goal{TargetAmount: 1000, CurrentAmount: 250}, 25, false, 750},
		{"over_target_clamped", Goal{TargetAmount: 100, CurrentAmount: 150}, 100, true, 0},
		{"exact_target", Goal{TargetAmount: 100, CurrentAmount: 100}, 100, true, 0},
		{"zero_target", Goal{TargetAmount: 0, CurrentAmount: 0}, 0, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewGoalView(tt.goal)
			assert.InDelta(t, tt.progress, view.Progress, 1e-9)
			assert.Equal(t, tt.completed, view.Completed)
			assert.InDelta(t, tt.remaining, view.Remaining, 1e-9)
		})
	}
}
