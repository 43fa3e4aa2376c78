// Package middleware provides HTTP middleware for the todo service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/ededddy/todo-api/internal/models"
	"github.com/ededddy/todo-api/internal/service"
	"github.com/gin-gonic/gin"
)

// userContextKey is where RequireAuth stores the authenticated user.
const userContextKey = "auth_user"

// RequireAuth returns middleware that rejects requests without a valid
// bearer token. The token's subject must resolve to a stored user; a
// well-signed token for a deleted user is rejected the same as a bad one.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "missing or malformed authorization header",
			})
			return
		}

		user, err := authService.ResolveSubject(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "invalid or expired token",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// UserFromContext returns the authenticated user stored by RequireAuth.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
