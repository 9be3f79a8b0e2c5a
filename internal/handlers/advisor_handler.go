package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fincontrol/internal/advisor"
	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/services"
)

const maxReceiptSize = 10 << 20

// AdvisorHandler exposes the AI features.
type AdvisorHandler struct {
	advisorService services.AdvisorServicer
}

// NewAdvisorHandler creates a new AdvisorHandler.
func NewAdvisorHandler(advisorService services.AdvisorServicer) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// ReceiptRequest carries a base64 image, optionally as a data URL.
type ReceiptRequest struct {
	Data     string `json:"data" binding:"required"`
	MIMEType string `json:"mimeType"`
}

// Analyze asks the model for advice on one month
// @Summary     Monthly financial advice
// @Description Sends the month's summary and transactions to the model and returns markdown advice.
// @Tags        advisor
// @Produce     json
// @Security    ApiKeyAuth
// @Param       year  query int false "Year"
// @Param       month query int false "Month (1-12)"
// @Success     200 {object} map[string]string
// @Failure     400 {object} ErrorResponse "Invalid period"
// @Failure     503 {object} ErrorResponse "AI unavailable or not configured"
// @Router      /advisor/analysis [post]
func (h *AdvisorHandler) Analyze(c *gin.Context) {
	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	advice, err := h.advisorService.Analyze(c.Request.Context(), year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": advice})
}

// ExtractReceipt reads a receipt image into a transaction draft
// @Summary     Read a receipt
// @Description Accepts a multipart "file" field or a JSON body with base64 data. Nothing is stored; the draft prefills a new transaction.
// @Tags        advisor
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Security    ApiKeyAuth
// @Param       file    formData file           false "Receipt image"
// @Param       request body     ReceiptRequest false "Base64 image"
// @Success     200 {object} services.ReceiptDraft
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "No data extracted"
// @Failure     503 {object} ErrorResponse "AI unavailable or not configured"
// @Router      /advisor/receipt [post]
func (h *AdvisorHandler) ExtractReceipt(c *gin.Context) {
	payload, mimeType, err := receiptPayload(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	draft, err := h.advisorService.ExtractReceipt(c.Request.Context(), payload, mimeType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipt": draft})
}

func receiptPayload(c *gin.Context) ([]byte, string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		header, err := c.FormFile("file")
		if err != nil {
			return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "file is required")
		}
		f, err := header.Open()
		if err != nil {
			return nil, "", apperrors.Wrap(apperrors.ErrInvalidInput, err)
		}
		defer f.Close()

		payload, err := io.ReadAll(io.LimitReader(f, maxReceiptSize))
		if err != nil {
			return nil, "", apperrors.Wrap(apperrors.ErrInvalidInput, err)
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = advisor.DefaultMIMEType
		}
		return payload, mimeType, nil
	}

	var req ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	payload, err := advisor.DecodePayload(req.Data)
	if err != nil {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "data must be base64 encoded")
	}
	mimeType := req.MIMEType
	if mimeType == "" {
		mimeType = advisor.DefaultMIMEType
	}
	return payload, mimeType, nil
}
