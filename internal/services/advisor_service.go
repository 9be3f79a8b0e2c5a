package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"fincontrol/internal/advisor"
	"fincontrol/internal/aggregation"
	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/logger"
	"fincontrol/internal/models"
)

// advisorService wires the store to the generative model. Failures never
// touch the collections.
type advisorService struct {
	store  *Store
	client advisor.Client
	now    func() time.Time

	// Concurrent analyses of the same month share one model call.
	sf singleflight.Group
}

// NewAdvisorService creates a new AdvisorServicer. now defaults to time.Now.
func NewAdvisorService(store *Store, client advisor.Client, now func() time.Time) AdvisorServicer {
	if now == nil {
		now = time.Now
	}
	return &advisorService{store: store, client: client, now: now}
}

// Analyze asks for advice on one month. A zero year or month means the
// current one.
func (s *advisorService) Analyze(ctx context.Context, year, month int) (string, error) {
	current := s.now()
	if year == 0 {
		year = current.Year()
	}
	if month == 0 {
		month = int(current.Month())
	}
	if month < 1 || month > 12 {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month")
	}

	key := fmt.Sprintf("%04d-%02d", year, month)
	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		txs := aggregation.Filter(s.store.Transactions(), aggregation.InMonth(year, time.Month(month)))
		return s.client.Advise(ctx, advisor.AdviceRequest{
			Summary:      aggregation.Summarize(txs, nil),
			Transactions: txs,
		})
	})
	if err != nil {
		return "", adviceError(err, "Não foi possível gerar a análise no momento.", false)
	}
	return result.(string), nil
}

// ExtractReceipt reads a receipt and maps its category onto the taxonomy.
func (s *advisorService) ExtractReceipt(ctx context.Context, payload []byte, mimeType string) (*ReceiptDraft, error) {
	if len(payload) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "receipt file is required")
	}

	data, err := s.client.ExtractReceipt(ctx, payload, mimeType)
	if err != nil {
		return nil, adviceError(err, "Não foi possível ler o comprovante.", true)
	}

	category, ok := models.MatchCategory(data.Category)
	if !ok {
		category = models.CategoryUncategorized
	}
	date := data.Date
	if !models.IsValidDate(date) {
		date = ""
	}

	return &ReceiptDraft{
		Description: data.Description,
		Amount:      data.Amount,
		Date:        date,
		Category:    category,
	}, nil
}

// adviceError maps advisor failures onto API errors. An empty or unreadable
// reply only means "no data" for extraction.
func adviceError(err error, message string, extraction bool) error {
	switch {
	case errors.Is(err, advisor.ErrNotConfigured):
		return apperrors.Wrap(apperrors.ErrAINotConfigured, err)
	case extraction && (errors.Is(err, advisor.ErrEmptyResponse) || errors.Is(err, advisor.ErrUnreadableResponse)):
		return apperrors.Wrap(apperrors.ErrNoDataExtracted, err)
	default:
		logger.Get().Errorw("Advisor call failed", "error", err)
		return apperrors.Wrap(apperrors.WithMessage(apperrors.ErrAIUnavailable, message), err)
	}
}
