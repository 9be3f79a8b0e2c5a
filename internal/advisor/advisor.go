// Package advisor talks to the generative model that writes the monthly
// financial analysis and reads receipts into transaction drafts.
package advisor

import (
	"context"
	"errors"

	"fincontrol/internal/config"
	"fincontrol/internal/logger"
	"fincontrol/internal/metrics"
	"fincontrol/internal/models"
)

var (
	// ErrNotConfigured is returned by every call when no API key is set.
	ErrNotConfigured = errors.New("advisor: no API key configured")
	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("advisor: circuit breaker open")
	// ErrEmptyResponse means the model answered with no usable content.
	ErrEmptyResponse = errors.New("advisor: empty response")
	// ErrUnreadableResponse means the model reply could not be parsed.
	ErrUnreadableResponse = errors.New("advisor: unreadable response")
)

// AdviceRequest is the month the analysis is about.
type AdviceRequest struct {
	Summary      models.Summary
	Transactions []models.Transaction
}

// ReceiptData is what the model read off a receipt. Category is free text
// and still has to be matched against the taxonomy.
type ReceiptData struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// Client is the advisory backend used by the services.
type Client interface {
	// Advise returns a markdown analysis of the month.
	Advise(ctx context.Context, req AdviceRequest) (string, error)
	// ExtractReceipt reads a receipt image or PDF.
	ExtractReceipt(ctx context.Context, payload []byte, mimeType string) (*ReceiptData, error)
}

// DisabledClient is used when the AI features are switched off.
type DisabledClient struct{}

func (DisabledClient) Advise(context.Context, AdviceRequest) (string, error) {
	return "", ErrNotConfigured
}

func (DisabledClient) ExtractReceipt(context.Context, []byte, string) (*ReceiptData, error) {
	return nil, ErrNotConfigured
}

// NewClient returns a Gemini-backed client, or a DisabledClient when
// cfg has no API key.
func NewClient(ctx context.Context, cfg *config.Config, recorder metrics.Recorder) (Client, error) {
	if cfg.GeminiAPIKey == "" {
		logger.Get().Infow("GEMINI_API_KEY not set, AI features disabled")
		return DisabledClient{}, nil
	}
	return NewGeminiClient(ctx, GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.AITimeout,
	}, recorder)
}
