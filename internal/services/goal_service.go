package services

import (
	"math"
	"strings"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/models"
	"fincontrol/internal/uuid"
)

// goalService handles goal-related business logic.
type goalService struct {
	store *Store
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(store *Store) GoalServicer {
	return &goalService{store: store}
}

func (s *goalService) CreateGoal(input GoalInput) (*models.GoalView, error) {
	goal, err := buildGoal(input)
	if err != nil {
		return nil, err
	}
	goal.ID = uuid.New()

	s.store.UpsertGoal(goal)
	view := models.NewGoalView(goal)
	return &view, nil
}

// UpdateGoal overwrites every editable field, including the current amount.
func (s *goalService) UpdateGoal(id string, input GoalInput) (*models.GoalView, error) {
	if _, ok := s.store.FindGoal(id); !ok {
		return nil, apperrors.ErrGoalNotFound
	}

	goal, err := buildGoal(input)
	if err != nil {
		return nil, err
	}
	goal.ID = id

	if !s.store.ReplaceGoal(goal) {
		return nil, apperrors.ErrGoalNotFound
	}
	view := models.NewGoalView(goal)
	return &view, nil
}

func (s *goalService) DeleteGoal(id string, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}
	if !s.store.DeleteGoal(id) {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

func (s *goalService) GetGoal(id string) (*models.GoalView, error) {
	goal, ok := s.store.FindGoal(id)
	if !ok {
		return nil, apperrors.ErrGoalNotFound
	}
	view := models.NewGoalView(goal)
	return &view, nil
}

// ListGoals returns every goal in insertion order.
func (s *goalService) ListGoals() ([]models.GoalView, error) {
	return goalViews(s.store.Goals()), nil
}

func goalViews(goals []models.Goal) []models.GoalView {
	views := make([]models.GoalView, len(goals))
	for i, g := range goals {
		views[i] = models.NewGoalView(g)
	}
	return views
}

func buildGoal(input GoalInput) (models.Goal, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if input.TargetAmount <= 0 || math.IsNaN(input.TargetAmount) || math.IsInf(input.TargetAmount, 0) {
		return models.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidAmount, "target amount must be greater than zero")
	}
	if input.CurrentAmount < 0 || math.IsNaN(input.CurrentAmount) || math.IsInf(input.CurrentAmount, 0) {
		return models.Goal{}, apperrors.WithMessage(apperrors.ErrInvalidAmount, "current amount cannot be negative")
	}
	deadline := strings.TrimSpace(input.Deadline)
	if deadline != "" && !models.IsValidDate(deadline) {
		return models.Goal{}, apperrors.ErrInvalidDate
	}

	return models.Goal{
		Name:          name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Deadline:      deadline,
		Notes:         strings.TrimSpace(input.Notes),
	}, nil
}
