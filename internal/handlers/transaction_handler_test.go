package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/models"
	"fincontrol/internal/pagination"
	"fincontrol/internal/services"
)

func setupTransactionRouter(svc services.TransactionServicer) *gin.Engine {
	h := NewTransactionHandler(svc)
	r := gin.New()
	r.POST("/transactions", h.CreateTransaction)
	r.GET("/transactions", h.ListTransactions)
	r.GET("/transactions/:id", h.GetTransaction)
	r.PUT("/transactions/:id", h.UpdateTransaction)
	r.DELETE("/transactions/:id", h.DeleteTransaction)
	return r
}

func TestTransactionHandler_Create(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.TransactionInput
		svc := &mockTransactionService{
			createFn: func(input services.TransactionInput) (*models.Transaction, error) {
				got = input
				return &models.Transaction{
					ID: "t1", Description: input.Description, Amount: input.Amount,
					Date: input.Date, Type: input.Type, Category: input.Category, GoalID: input.GoalID,
				}, nil
			},
		}
		body := `{"description":"Aporte","amount":300,"date":"2024-05-20","type":"INVESTMENT","category":"Investimentos/Poupança","goalId":"g1"}`

		rec := doRequest(setupTransactionRouter(svc), http.MethodPost, "/transactions", body)
		assertStatus(t, rec, http.StatusCreated)

		assert.Equal(t, "g1", got.GoalID)
		assert.Equal(t, models.TransactionTypeInvestment, got.Type)
		assert.Equal(t, 300.0, got.Amount)
		tx, ok := parseJSON(t, rec)["transaction"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "t1", tx["id"])
		assert.Equal(t, "g1", tx["goalId"])
	})

	t.Run("returns 400 on malformed JSON", func(t *testing.T) {
		rec := doRequest(setupTransactionRouter(&mockTransactionService{}), http.MethodPost, "/transactions", `{"amount":`)
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("passes through service validation codes", func(t *testing.T) {
		svc := &mockTransactionService{
			createFn: func(services.TransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrInvalidAmount
			},
		}
		rec := doRequest(setupTransactionRouter(svc), http.MethodPost, "/transactions", `{"description":"x","amount":0}`)
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "INVALID_AMOUNT")
	})

	t.Run("returns 404 for unknown goal", func(t *testing.T) {
		svc := &mockTransactionService{
			createFn: func(services.TransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		rec := doRequest(setupTransactionRouter(svc), http.MethodPost, "/transactions", `{"description":"x","amount":1,"type":"INVESTMENT","goalId":"nope"}`)
		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_FOUND")
	})
}

func TestTransactionHandler_List(t *testing.T) {
	t.Run("maps query to filter and page", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		var gotPage pagination.PageRequest
		svc := &mockTransactionService{
			listFn: func(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter, gotPage = filter, page
				resp := pagination.NewPageResponse([]models.Transaction{{ID: "a"}}, 2, 5, 6)
				return &resp, nil
			},
		}

		rec := doRequest(setupTransactionRouter(svc), http.MethodGet,
			"/transactions?start=2024-05-01&end=2024-05-31&type=VARIABLE_EXPENSE&category=Cinema&page=2&page_size=5", "")
		assertStatus(t, rec, http.StatusOK)

		assert.Equal(t, "2024-05-01", gotFilter.StartDate)
		assert.Equal(t, "2024-05-31", gotFilter.EndDate)
		require.NotNil(t, gotFilter.Type)
		assert.Equal(t, models.TransactionTypeVariableExpense, *gotFilter.Type)
		require.NotNil(t, gotFilter.Category)
		assert.Equal(t, models.CategoryCinema, *gotFilter.Category)
		assert.Equal(t, 2, gotPage.Page)
		assert.Equal(t, 5, gotPage.PageSize)
		result := parseJSON(t, rec)
		assert.Equal(t, float64(6), result["total_items"])
		assert.Equal(t, float64(2), result["total_pages"])
	})

	t.Run("no filters leaves pointers nil", func(t *testing.T) {
		var gotFilter services.TransactionFilter
		svc := &mockTransactionService{
			listFn: func(filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				gotFilter = filter
				resp := pagination.Slice([]models.Transaction{}, page)
				return &resp, nil
			},
		}
		rec := doRequest(setupTransactionRouter(svc), http.MethodGet, "/transactions", "")
		assertStatus(t, rec, http.StatusOK)
		assert.Nil(t, gotFilter.Type)
		assert.Nil(t, gotFilter.Category)
	})

	invalid := []struct {
		name  string
		query string
	}{
		{"bad type", "?type=SAVINGS"},
		{"bad date", "?start=01/05/2024"},
		{"bad category", "?category=Pets"},
		{"page size over limit", "?page_size=500"},
	}
	for _, tt := range invalid {
		t.Run("returns 400 for "+tt.name, func(t *testing.T) {
			rec := doRequest(setupTransactionRouter(&mockTransactionService{}), http.MethodGet, "/transactions"+tt.query, "")
			assertStatus(t, rec, http.StatusBadRequest)
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}
}

func TestTransactionHandler_Get(t *testing.T) {
	t.Run("returns 200 when found", func(t *testing.T) {
		svc := &mockTransactionService{
			getFn: func(id string) (*models.Transaction, error) {
				return &models.Transaction{ID: id, Description: "Mercado"}, nil
			},
		}
		rec := doRequest(setupTransactionRouter(svc), http.MethodGet, "/transactions/abc", "")
		assertStatus(t, rec, http.StatusOK)
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		assert.Equal(t, "abc", tx["id"])
	})

	t.Run("returns 404 when missing", func(t *testing.T) {
		rec := doRequest(setupTransactionRouter(&mockTransactionService{}), http.MethodGet, "/transactions/abc", "")
		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})
}

func TestTransactionHandler_Update(t *testing.T) {
	var gotID string
	svc := &mockTransactionService{
		updateFn: func(id string, input services.TransactionInput) (*models.Transaction, error) {
			gotID = id
			return &models.Transaction{ID: id, Amount: input.Amount}, nil
		},
	}
	rec := doRequest(setupTransactionRouter(svc), http.MethodPut, "/transactions/t9",
		`{"description":"Aporte","amount":500,"date":"2024-05-20","type":"INVESTMENT"}`)
	assertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "t9", gotID)
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Run("passes confirmation", func(t *testing.T) {
		var gotConfirmed bool
		svc := &mockTransactionService{
			deleteFn: func(_ string, confirmed bool) error {
				gotConfirmed = confirmed
				return nil
			},
		}
		rec := doRequest(setupTransactionRouter(svc), http.MethodDelete, "/transactions/t1?confirm=true", "")
		assertStatus(t, rec, http.StatusOK)
		assert.True(t, gotConfirmed)
	})

	t.Run("unconfirmed is rejected by service", func(t *testing.T) {
		svc := &mockTransactionService{
			deleteFn: func(_ string, confirmed bool) error {
				if !confirmed {
					return apperrors.ErrConfirmationRequired
				}
				return nil
			},
		}
		rec := doRequest(setupTransactionRouter(svc), http.MethodDelete, "/transactions/t1", "")
		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "CONFIRMATION_REQUIRED")
	})
}
