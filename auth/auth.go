package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightcart/storefront-api/config"
	"github.com/brightcart/storefront-api/models"
)

type RegisterInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Address   string `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func Register(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid input: " + err.Error()})
			return
		}

		if err := ValidatePassword(input.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": err.Error()})
			return
		}

		var existing models.User
		err := db.Where("username = ?", input.Username).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"code": "USERNAME_TAKEN", "error": "Username already exists"})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to register"})
			return
		}

		hash, err := HashPassword(input.Password, cfg.BcryptCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to register"})
			return
		}

		user := models.User{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Username:  input.Username,
			Email:     input.Email,
			Password:  hash,
			Address:   input.Address,
			Role:      models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to register"})
			return
		}

		token, err := IssueToken([]byte(cfg.JWTSecret), user.ID, user.Role, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"access_token": token})
	}
}

// POST /api/auth/login
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", input.Email).First(&user).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to log in"})
			return
		}

		// Same bcrypt work for unknown email and wrong password; the
		// response never reveals which one it was.
		if !CheckPassword(input.Password, user.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIALS", "error": "Invalid credentials"})
			return
		}

		token, err := IssueToken([]byte(cfg.JWTSecret), user.ID, user.Role, cfg.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token})
	}
}

// GET /api/auth/me
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// POST /api/auth/logout
//
// The client also clears its own copy of the credential; this endpoint
// additionally denylists the token id so the credential stops working
// server-side before its natural expiry.
func Logout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsVal, exists := c.Get("token_claims")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Unauthorized"})
			return
		}
		claims := claimsVal.(*TokenClaims)

		revoked := models.RevokedToken{
			JTI:       claims.ID,
			ExpiresAt: claims.ExpiresAt.Time,
			RevokedAt: time.Now(),
		}
		// Revoking twice is a no-op, not an error.
		if err := db.Where("jti = ?", revoked.JTI).FirstOrCreate(&revoked).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to log out"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
