package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fincontrol/internal/errors"
	"fincontrol/internal/logger"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parseConfirm reads the confirm query flag used by destructive routes.
// A missing flag is false; a malformed one is an input error.
func parseConfirm(c *gin.Context) (bool, error) {
	raw := c.Query("confirm")
	if raw == "" {
		return false, nil
	}
	confirmed, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "confirm must be true or false")
	}
	return confirmed, nil
}

// parseOptionalInt parses an integer query parameter, returning 0 when absent.
func parseOptionalInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name)
	}
	return n, nil
}

// parseYearMonth reads the year and month query parameters. Zero values
// select the current month in the services.
func parseYearMonth(c *gin.Context) (year, month int, err error) {
	if year, err = parseOptionalInt(c, "year"); err != nil {
		return 0, 0, err
	}
	if month, err = parseOptionalInt(c, "month"); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    apperrors.ErrInternalServer.Code,
			Message: apperrors.ErrInternalServer.Message,
		},
	})
}
