// Package goalsync keeps goal balances consistent with the investment
// transactions linked to them.
//
// Balances are patched incrementally: an upsert retracts the previous
// contribution of the transaction (when it had one) and applies the new one.
// Every adjusted balance is floored at zero.
package goalsync

import "fincontrol/internal/models"

// Previous describes the contribution a transaction made before an edit.
// GoalID is empty when the old version was not linked to any goal.
type Previous struct {
	Amount float64
	GoalID string
}

// Apply returns a copy of goals with the contribution of tx moved from
// prev.GoalID to newGoalID. prev is nil on create. The input slice is not
// modified. Non-investment transactions leave goals untouched.
func Apply(goals []models.Goal, tx models.Transaction, newGoalID string, prev *Previous) []models.Goal {
	out := make([]models.Goal, len(goals))
	copy(out, goals)
	if !tx.IsInvestment() {
		return out
	}
	return adjust(out, newGoalID, tx.Amount, prev)
}

// Retract removes the contribution of tx from its linked goal. It is the
// reverse of the create-time Apply and is used when a transaction is deleted
// or stops being an investment.
func Retract(goals []models.Goal, tx models.Transaction) []models.Goal {
	out := make([]models.Goal, len(goals))
	copy(out, goals)
	if tx.LinkedGoalID() == "" {
		return out
	}
	return adjust(out, "", 0, &Previous{Amount: tx.Amount, GoalID: tx.GoalID})
}

func adjust(goals []models.Goal, newGoalID string, amount float64, prev *Previous) []models.Goal {
	for i := range goals {
		g := &goals[i]
		changed := false
		current := g.CurrentAmount

		if prev != nil && prev.GoalID != "" && g.ID == prev.GoalID {
			current -= prev.Amount
			changed = true
		}
		if newGoalID != "" && g.ID == newGoalID {
			current += amount
			changed = true
		}
		if !changed {
			continue
		}
		if current < 0 {
			current = 0
		}
		g.CurrentAmount = current
	}
	return goals
}

// Recompute derives every goal balance from scratch as its base amount plus
// the sum of the investment transactions linked to it. base maps goal IDs to
// the amount saved outside of any transaction; missing entries count as 0.
func Recompute(goals []models.Goal, txs []models.Transaction, base map[string]float64) []models.Goal {
	sums := make(map[string]float64, len(goals))
	for _, tx := range txs {
		if id := tx.LinkedGoalID(); id != "" {
			sums[id] += tx.Amount
		}
	}
	out := make([]models.Goal, len(goals))
	for i, g := range goals {
		g.CurrentAmount = base[g.ID] + sums[g.ID]
		out[i] = g
	}
	return out
}
