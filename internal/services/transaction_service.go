package services

import (
	"math"
	"strings"

	"fincontrol/internal/aggregation"
	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/models"
	"fincontrol/internal/pagination"
	"fincontrol/internal/uuid"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store *Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(store *Store) TransactionServicer {
	return &transactionService{store: store}
}

// CreateTransaction validates the input, assigns an id and stores it.
// Investments linked to a goal add their amount to that goal.
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	tx, err := buildTransaction(input, "", s.goalExists)
	if err != nil {
		return nil, err
	}
	tx.ID = uuid.New()

	s.store.UpsertTransaction(tx, nil)
	return &tx, nil
}

// UpdateTransaction replaces the editable fields of an existing transaction.
// Goal balances are moved from the old link to the new one.
func (s *transactionService) UpdateTransaction(id string, input TransactionInput) (*models.Transaction, error) {
	tx, err := s.store.UpdateTransaction(id, func(existing models.Transaction, goalExists func(string) bool) (models.Transaction, error) {
		return buildTransaction(input, existing.GoalID, goalExists)
	})
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *transactionService) goalExists(id string) bool {
	_, ok := s.store.FindGoal(id)
	return ok
}

// DeleteTransaction removes a transaction. It cannot be undone, so the
// caller has to confirm it.
func (s *transactionService) DeleteTransaction(id string, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}
	if _, ok := s.store.DeleteTransaction(id); !ok {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

func (s *transactionService) GetTransaction(id string) (*models.Transaction, error) {
	tx, ok := s.store.FindTransaction(id)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &tx, nil
}

// ListTransactions filters, sorts newest first and paginates.
func (s *transactionService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if filter.StartDate != "" && !models.IsValidDate(filter.StartDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDate, "start must use the YYYY-MM-DD format")
	}
	if filter.EndDate != "" && !models.IsValidDate(filter.EndDate) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidDate, "end must use the YYYY-MM-DD format")
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, apperrors.ErrInvalidTransactionType
	}

	txs := aggregation.Filter(s.store.Transactions(), func(t models.Transaction) bool {
		if filter.StartDate != "" && t.Date < filter.StartDate {
			return false
		}
		if filter.EndDate != "" && t.Date > filter.EndDate {
			return false
		}
		if filter.Type != nil && t.Type != *filter.Type {
			return false
		}
		if filter.Category != nil && t.Category != *filter.Category {
			return false
		}
		return true
	})

	result := pagination.Slice(aggregation.SortByDateDesc(txs), page)
	return &result, nil
}

// buildTransaction validates input. knownGoalID is accepted even when that
// goal has since been deleted, so old links survive an edit.
func buildTransaction(input TransactionInput, knownGoalID string, goalExists func(id string) bool) (models.Transaction, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return models.Transaction{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if input.Amount <= 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return models.Transaction{}, apperrors.ErrInvalidAmount
	}
	if !models.IsValidDate(input.Date) {
		return models.Transaction{}, apperrors.ErrInvalidDate
	}
	if !input.Type.IsValid() {
		return models.Transaction{}, apperrors.ErrInvalidTransactionType
	}

	category := input.Category
	if category == "" {
		category = models.DefaultCategory(input.Type)
	}
	if !models.AllowsCategory(input.Type, category) {
		return models.Transaction{}, apperrors.ErrInvalidCategory
	}

	goalID := ""
	if input.Type == models.TransactionTypeInvestment && input.GoalID != "" {
		if !goalExists(input.GoalID) && input.GoalID != knownGoalID {
			return models.Transaction{}, apperrors.ErrGoalNotFound
		}
		goalID = input.GoalID
	}

	return models.Transaction{
		Description: description,
		Amount:      input.Amount,
		Date:        input.Date,
		Type:        input.Type,
		Category:    category,
		DocumentURL: strings.TrimSpace(input.DocumentURL),
		GoalID:      goalID,
	}, nil
}
