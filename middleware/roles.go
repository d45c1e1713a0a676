package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightcart/storefront-api/models"
)

// RequireRole gates a route group on the role claim set by RequireAuth.
// A valid credential with the wrong role gets 403, not 401.
func RequireRole(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, exists := c.Get("user_role")
		if !exists || current.(string) != string(role) {
			c.JSON(http.StatusForbidden, gin.H{"code": "UNAUTHORIZED", "error": "Insufficient privileges"})
			c.Abort()
			return
		}
		c.Next()
	}
}
