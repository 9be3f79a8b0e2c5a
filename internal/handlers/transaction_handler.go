package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/models"
	"fincontrol/internal/pagination"
	"fincontrol/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the request payload for creating or
// updating a transaction. Field rules beyond length are enforced by the
// service so each failure keeps its own error code.
type TransactionRequest struct {
	Description string                 `json:"description" binding:"max=500"`
	Amount      float64                `json:"amount"`
	Date        string                 `json:"date"`
	Type        models.TransactionType `json:"type"`
	Category    models.Category        `json:"category"`
	DocumentURL string                 `json:"documentUrl" binding:"omitempty,max=2048"`
	GoalID      string                 `json:"goalId"`
}

func (r TransactionRequest) input() services.TransactionInput {
	return services.TransactionInput{
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Type:        r.Type,
		Category:    r.Category,
		DocumentURL: r.DocumentURL,
		GoalID:      r.GoalID,
	}
}

// TransactionListQuery holds the filter query parameters for listing.
type TransactionListQuery struct {
	Start    string `form:"start" binding:"omitempty,iso_date"`
	End      string `form:"end" binding:"omitempty,iso_date"`
	Type     string `form:"type" binding:"omitempty,transaction_type"`
	Category string `form:"category" binding:"omitempty,category"`
}

func (q TransactionListQuery) filter() services.TransactionFilter {
	f := services.TransactionFilter{StartDate: q.Start, EndDate: q.End}
	if q.Type != "" {
		t := models.TransactionType(q.Type)
		f.Type = &t
	}
	if q.Category != "" {
		cat := models.Category(q.Category)
		f.Category = &cat
	}
	return f
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record income, an expense or an investment. Investments linked to a goal add to its balance.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Linked goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactions returns transactions newest first
// @Summary     List transactions
// @Description List transactions with optional date range, type and category filters
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       start     query string false "First date (YYYY-MM-DD)"
// @Param       end       query string false "Last date (YYYY-MM-DD)"
// @Param       type      query string false "Transaction type"
// @Param       category  query string false "Category label"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction]
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var query TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.ListTransactions(query.filter(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransaction returns a single transaction
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.transactionService.GetTransaction(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction replaces the editable fields of a transaction
// @Summary     Update a transaction
// @Description Replace a transaction. Goal balances follow the change of amount, type or linked goal.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path string             true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction or goal not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Param("id"), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Description Delete a transaction. Requires confirm=true. A linked investment is taken back out of its goal.
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id      path  string true "Transaction ID"
// @Param       confirm query bool   true "Must be true"
// @Success     200 {object} map[string]string
// @Failure     400 {object} ErrorResponse "Confirmation required"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	confirmed, err := parseConfirm(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Param("id"), confirmed); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
