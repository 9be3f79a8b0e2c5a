package models

// Goal represents a named savings target with accumulated progress.
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Notes         string  `json:"notes"`
}

// Progress returns completion as a percentage clamped to [0, 100].
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Completed reports whether the target has been reached.
func (g Goal) Completed() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// Remaining returns how much is still missing, never negative.
func (g Goal) Remaining() float64 {
	if r := g.TargetAmount - g.CurrentAmount; r > 0 {
		return r
	}
	return 0
}

// GoalView is a Goal plus its derived progress fields.
type GoalView struct {
	Goal
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
	Remaining float64 `json:"remaining"`
}

// NewGoalView computes the derived fields for g.
func NewGoalView(g Goal) GoalView {
	return GoalView{
		Goal:      g,
		Progress:  g.Progress(),
		Completed: g.Completed(),
		Remaining: g.Remaining(),
	}
}
