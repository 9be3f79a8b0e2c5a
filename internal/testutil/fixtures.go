package testutil

import (
	"fmt"
	"sync/atomic"

	"fincontrol/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTransaction builds a valid transaction of the given type dated in May 2024.
func NewTransaction(typ models.TransactionType, amount float64) models.Transaction {
	n := nextID()
	return models.Transaction{
		ID:          fmt.Sprintf("tx-%d", n),
		Description: fmt.Sprintf("Transaction %d", n),
		Amount:      amount,
		Date:        "2024-05-10",
		Type:        typ,
		Category:    models.DefaultCategory(typ),
	}
}

// NewInvestment builds an investment transaction linked to goalID.
func NewInvestment(amount float64, goalID string) models.Transaction {
	tx := NewTransaction(models.TransactionTypeInvestment, amount)
	tx.GoalID = goalID
	return tx
}

// NewGoal builds a goal with the given target and current balance.
func NewGoal(target, current float64) models.Goal {
	n := nextID()
	return models.Goal{
		ID:            fmt.Sprintf("goal-%d", n),
		Name:          fmt.Sprintf("Goal %d", n),
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      "2025-12-31",
	}
}
