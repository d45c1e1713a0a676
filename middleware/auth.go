package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightcart/storefront-api/auth"
	"github.com/brightcart/storefront-api/config"
	"github.com/brightcart/storefront-api/models"
)

// TokenFromRequest extracts the raw credential from the Authorization
// header, falling back to the auth-token cookie the admission gate mirrors
// for page-level checks.
func TokenFromRequest(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth-token"); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth fully verifies the credential (signature, expiry, revocation)
// and puts user_id, user_role and token_claims into the request context.
// Every protected operation runs this regardless of what the page admission
// gate decided; the gate is advisory only.
func RequireAuth(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Authorization header is missing"})
			c.Abort()
			return
		}

		claims, err := auth.ParseToken([]byte(cfg.JWTSecret), tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Invalid or expired token"})
			c.Abort()
			return
		}

		var revoked models.RevokedToken
		if err := db.First(&revoked, "jti = ?", claims.ID).Error; err == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Invalid or expired token"})
			c.Abort()
			return
		} else if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to validate token"})
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", claims.Role)
		c.Set("token_claims", claims)

		c.Next()
	}
}
