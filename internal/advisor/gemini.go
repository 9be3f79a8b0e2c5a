package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fincontrol/internal/logger"
	"fincontrol/internal/metrics"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when GeminiConfig.Model is empty.
const DefaultModel = "gemini-2.5-flash"

const (
	opAdvise  = "advise"
	opReceipt = "receipt"
)

// generator is the slice of the genai API the client needs.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig configures GeminiClient.
type GeminiConfig struct {
	APIKey string
	Model  string
	// Timeout bounds a single model call (default: 30s).
	Timeout time.Duration
	// MaxFailures is the number of consecutive failures that opens the
	// circuit (default: 5).
	MaxFailures uint32
	// OpenTimeout is how long the circuit stays open (default: 60s).
	OpenTimeout time.Duration
}

// GeminiClient implements Client on the Gemini API.
type GeminiClient struct {
	models  generator
	model   string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker
	metrics metrics.Recorder
	log     *zap.SugaredLogger
}

// NewGeminiClient connects to the Gemini API with cfg.APIKey.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, recorder metrics.Recorder) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("advisor: create genai client: %w", err)
	}
	return newGeminiClient(client.Models, cfg, recorder), nil
}

func newGeminiClient(models generator, cfg GeminiConfig, recorder metrics.Recorder) *GeminiClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 60 * time.Second
	}
	if recorder == nil {
		recorder = metrics.NoOp{}
	}

	c := &GeminiClient{
		models:  models,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		metrics: recorder,
		log:     logger.Named("advisor"),
	}

	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		// Caller cancellation is not a model failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			c.log.Warnw("Circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
			c.metrics.RecordCircuitState(name, to == gobreaker.StateOpen)
		},
	})

	c.log.Infow("Advisor initialized", "model", cfg.Model, "timeout", cfg.Timeout)
	return c
}

// Advise asks the model for a markdown analysis of req.
func (c *GeminiClient) Advise(ctx context.Context, req AdviceRequest) (string, error) {
	prompt, err := buildAdvicePrompt(req)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	text, err := c.generate(ctx, opAdvise, contents, nil)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// ExtractReceipt sends the receipt as inline data and parses the JSON reply.
func (c *GeminiClient) ExtractReceipt(ctx context.Context, payload []byte, mimeType string) (*ReceiptData, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyResponse
	}
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     payload,
					},
				},
				{Text: buildReceiptPrompt()},
			},
		},
	}

	text, err := c.generate(ctx, opReceipt, contents, receiptConfig())
	if err != nil {
		return nil, err
	}
	return parseReceipt(text)
}

func (c *GeminiClient) generate(ctx context.Context, op string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	result, err := c.cb.Execute(func() (interface{}, error) {
		resp, err := c.models.GenerateContent(ctx, c.model, contents, cfg)
		if err != nil {
			return nil, err
		}
		return resp.Text(), nil
	})
	duration := time.Since(start)
	c.metrics.RecordAdvisorCall(op, err == nil, duration)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Warnw("Circuit breaker open, request rejected", "operation", op)
			return "", ErrCircuitOpen
		}
		switch {
		case errors.Is(err, context.Canceled):
			c.log.Debugw("Model call canceled by caller", "operation", op)
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			c.log.Warnw("Model call timed out", "operation", op, "timeout", c.timeout)
		default:
			c.log.Errorw("Model call failed", "operation", op, "duration", duration, "error", err)
		}
		return "", fmt.Errorf("advisor: %s: %w", op, err)
	}
	return result.(string), nil
}

func receiptConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"description": {Type: genai.TypeString},
				"amount":      {Type: genai.TypeNumber},
				"date":        {Type: genai.TypeString},
				"category":    {Type: genai.TypeString},
			},
			Required: []string{"description", "amount", "date"},
		},
	}
}
