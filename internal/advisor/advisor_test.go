package advisor

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"fincontrol/internal/config"
	"fincontrol/internal/logger"
	"fincontrol/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	os.Exit(m.Run())
}

type call struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls []call
	text  string
	err   error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{model: model, contents: contents, config: config})
	if f.err != nil {
		return nil, f.err
	}
	return textResponse(f.text), nil
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func newTestClient(gen generator) *GeminiClient {
	return newGeminiClient(gen, GeminiConfig{MaxFailures: 2, OpenTimeout: time.Minute}, nil)
}

func TestGeminiClient_Advise(t *testing.T) {
	t.Run("sends_reduced_transactions", func(t *testing.T) {
		gen := &fakeGenerator{text: "📊 **Panorama Rápido**: tudo certo"}
		c := newTestClient(gen)

		got, err := c.Advise(context.Background(), AdviceRequest{
			Summary: models.Summary{TotalIncome: 5000, NetBalance: 3500},
			Transactions: []models.Transaction{{
				ID:          "t1",
				Description: "Mercado",
				Amount:      1500,
				Date:        "2024-05-10",
				Type:        models.TransactionTypeVariableExpense,
				Category:    models.CategorySupermarket,
			}},
		})
		require.NoError(t, err)
		assert.Contains(t, got, "Panorama Rápido")

		require.Len(t, gen.calls, 1)
		assert.Equal(t, DefaultModel, gen.calls[0].model)
		assert.Nil(t, gen.calls[0].config)
		prompt := gen.calls[0].contents[0].Parts[0].Text
		assert.Contains(t, prompt, `"desc": "Mercado"`)
		assert.Contains(t, prompt, `"val": 1500`)
		assert.Contains(t, prompt, `"totalIncome": 5000`)
		assert.Contains(t, prompt, "Dica de Ouro")
		assert.NotContains(t, prompt, `"id"`)
	})

	t.Run("empty_reply", func(t *testing.T) {
		c := newTestClient(&fakeGenerator{text: ""})
		_, err := c.Advise(context.Background(), AdviceRequest{})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("transport_error", func(t *testing.T) {
		boom := errors.New("boom")
		c := newTestClient(&fakeGenerator{err: boom})
		_, err := c.Advise(context.Background(), AdviceRequest{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestGeminiClient_ExtractReceipt(t *testing.T) {
	t.Run("parses_fenced_json", func(t *testing.T) {
		gen := &fakeGenerator{text: "```json\n{\"description\":\"Padaria\",\"amount\":23.5,\"date\":\"2024-05-02\",\"category\":\"Alimentação\"}\n```"}
		c := newTestClient(gen)

		got, err := c.ExtractReceipt(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "")
		require.NoError(t, err)
		assert.Equal(t, &ReceiptData{Description: "Padaria", Amount: 23.5, Date: "2024-05-02", Category: "Alimentação"}, got)

		require.Len(t, gen.calls, 1)
		parts := gen.calls[0].contents[0].Parts
		require.Len(t, parts, 2)
		assert.Equal(t, DefaultMIMEType, parts[0].InlineData.MIMEType)
		assert.Contains(t, parts[1].Text, string(models.CategoryCinema))

		cfg := gen.calls[0].config
		require.NotNil(t, cfg)
		assert.Equal(t, "application/json", cfg.ResponseMIMEType)
		assert.Equal(t, []string{"description", "amount", "date"}, cfg.ResponseSchema.Required)
	})

	t.Run("empty_payload", func(t *testing.T) {
		gen := &fakeGenerator{}
		_, err := newTestClient(gen).ExtractReceipt(context.Background(), nil, "image/png")
		assert.ErrorIs(t, err, ErrEmptyResponse)
		assert.Empty(t, gen.calls)
	})

	t.Run("unreadable_reply", func(t *testing.T) {
		c := newTestClient(&fakeGenerator{text: "não consegui ler"})
		_, err := c.ExtractReceipt(context.Background(), []byte("x"), "image/jpeg")
		assert.ErrorIs(t, err, ErrUnreadableResponse)
	})
}

func TestGeminiClient_CircuitBreaker(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("unavailable")}
	c := newTestClient(gen)

	for i := 0; i < 2; i++ {
		_, err := c.Advise(context.Background(), AdviceRequest{})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}

	_, err := c.Advise(context.Background(), AdviceRequest{})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Len(t, gen.calls, 2)
}

// ctxGenerator answers like the real API: a done context fails the call.
type ctxGenerator struct {
	mu    sync.Mutex
	calls int
}

func (g *ctxGenerator) GenerateContent(ctx context.Context, _ string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return textResponse("ok"), nil
}

func TestGeminiClient_CanceledCallsKeepCircuitClosed(t *testing.T) {
	gen := &ctxGenerator{}
	c := newTestClient(gen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 3; i++ {
		_, err := c.Advise(ctx, AdviceRequest{})
		require.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrCircuitOpen)
	}

	got, err := c.Advise(context.Background(), AdviceRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 4, gen.calls)
}

func TestDisabledClient(t *testing.T) {
	var c Client = DisabledClient{}
	_, err := c.Advise(context.Background(), AdviceRequest{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = c.ExtractReceipt(context.Background(), []byte("x"), "image/png")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewClient_WithoutKey(t *testing.T) {
	c, err := NewClient(context.Background(), &config.Config{}, nil)
	require.NoError(t, err)
	assert.IsType(t, DisabledClient{}, c)
}

func TestParseReceipt(t *testing.T) {
	t.Run("surrounding_text", func(t *testing.T) {
		got, err := parseReceipt("Aqui está:\n{\"description\":\" Uber \",\"amount\":18,\"date\":\"2024-05-03\"}\nobrigado")
		require.NoError(t, err)
		assert.Equal(t, "Uber", got.Description)
		assert.Equal(t, "", got.Category)
	})

	t.Run("null", func(t *testing.T) {
		_, err := parseReceipt("null")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("no_fields", func(t *testing.T) {
		_, err := parseReceipt("{}")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}

func TestStripDataURL(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", StripDataURL("data:image/png;base64,aGVsbG8="))
	assert.Equal(t, "aGVsbG8=", StripDataURL("aGVsbG8="))
	assert.Equal(t, "data:,", StripDataURL("data:,"))
}

func TestDecodePayload(t *testing.T) {
	got, err := DecodePayload("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	got, err = DecodePayload("aGVsbG8")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	_, err = DecodePayload("***")
	assert.Error(t, err)
}

func TestBuildReceiptPrompt(t *testing.T) {
	p := buildReceiptPrompt()
	assert.Contains(t, p, `use "Não Categorizado"`)
	assert.True(t, strings.Contains(p, string(models.CategoryRentHomeLoan)+", "))
}
