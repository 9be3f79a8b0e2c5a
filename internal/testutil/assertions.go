package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fincontrol/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	require.Error(t, err, "expected AppError with code %q", expectedCode)
	appErr, ok := apperrors.As(err)
	require.True(t, ok, "expected *AppError, got %T: %v", err, err)
	assert.Equal(t, expectedCode, appErr.Code, "message: %s", appErr.Message)
}
