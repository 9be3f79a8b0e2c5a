package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "fincontrol/internal/errors"
)

// APIKeyAuth creates a Gin middleware that validates the X-API-Key header
// against apiKey. An empty apiKey leaves the routes open.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(apperrors.ErrInvalidAPIKey.StatusCode,
				gin.H{"error": gin.H{"code": apperrors.ErrInvalidAPIKey.Code, "message": apperrors.ErrInvalidAPIKey.Message}})
			return
		}
		c.Next()
	}
}
