package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/services"
)

// GoalHandler handles savings goal requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GoalRequest represents the request payload for creating or updating a goal.
type GoalRequest struct {
	Name          string  `json:"name" binding:"max=200"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Notes         string  `json:"notes" binding:"max=2000"`
}

func (r GoalRequest) input() services.GoalInput {
	return services.GoalInput{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      r.Deadline,
		Notes:         r.Notes,
	}
}

// CreateGoal handles the creation of a new goal
// @Summary     Create a goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body GoalRequest true "Goal details"
// @Success     201 {object} models.GoalView "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// ListGoals returns every goal with its progress
// @Summary     List goals
// @Tags        goals
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {array} models.GoalView
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// GetGoal returns a single goal
// @Summary     Get a goal
// @Tags        goals
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} models.GoalView
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goal, err := h.goalService.GetGoal(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// UpdateGoal replaces the editable fields of a goal
// @Summary     Update a goal
// @Description Replace a goal. The current amount is taken as given; linked transactions are not re-applied.
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string      true "Goal ID"
// @Param       request body GoalRequest true "Goal details"
// @Success     200 {object} models.GoalView
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Param("id"), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal removes a goal
// @Summary     Delete a goal
// @Description Delete a goal. Requires confirm=true. Transactions keep their now dangling link.
// @Tags        goals
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path  string true "Goal ID"
// @Param       confirm query bool   true "Must be true"
// @Success     200 {object} map[string]string
// @Failure     400 {object} ErrorResponse "Confirmation required"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	confirmed, err := parseConfirm(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(c.Param("id"), confirmed); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
