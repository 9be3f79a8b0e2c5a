package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/models"
)

// CategoryHandler serves the fixed taxonomy used by the entry forms.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryOptions lists the categories valid for a type.
type CategoryOptions struct {
	Type       models.TransactionType `json:"type,omitempty"`
	Default    models.Category        `json:"default,omitempty"`
	Categories []models.Category      `json:"categories"`
}

// TransactionTypeOption is a type with its display label.
type TransactionTypeOption struct {
	Value models.TransactionType `json:"value"`
	Label string                 `json:"label"`
}

// ListCategories returns the category options
// @Summary     List categories
// @Description Without a type, returns the whole taxonomy. With a type, returns the categories allowed for it and the preselected default.
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Param       type query string false "Transaction type"
// @Success     200 {object} CategoryOptions
// @Failure     400 {object} ErrorResponse "Unknown type"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	raw := c.Query("type")
	if raw == "" {
		c.JSON(http.StatusOK, CategoryOptions{Categories: models.Categories})
		return
	}

	t := models.TransactionType(raw)
	if !t.IsValid() {
		respondWithError(c, apperrors.ErrInvalidTransactionType)
		return
	}

	c.JSON(http.StatusOK, CategoryOptions{
		Type:       t,
		Default:    models.DefaultCategory(t),
		Categories: models.CategoriesFor(t),
	})
}

// ListTransactionTypes returns the supported types
// @Summary     List transaction types
// @Tags        categories
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {array} TransactionTypeOption
// @Router      /transaction-types [get]
func (h *CategoryHandler) ListTransactionTypes(c *gin.Context) {
	options := make([]TransactionTypeOption, 0, len(models.TransactionTypes))
	for _, t := range models.TransactionTypes {
		options = append(options, TransactionTypeOption{Value: t, Label: t.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"types": options})
}
