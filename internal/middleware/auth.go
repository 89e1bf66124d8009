package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"habitflow/internal/constants"
	apierrors "habitflow/internal/errors"
	"habitflow/internal/services"
)

// RequireAuth validates the bearer token and stores the caller's identity
// in the request context. Missing, malformed and expired tokens all fail
// with the same 401.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, userID, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUsername, claims.Username)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
