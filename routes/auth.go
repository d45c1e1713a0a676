package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightcart/storefront-api/auth"
	"github.com/brightcart/storefront-api/config"
	"github.com/brightcart/storefront-api/middleware"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(db, cfg))
		authGroup.POST("/login", auth.Login(db, cfg))

		authed := authGroup.Group("")
		authed.Use(middleware.RequireAuth(db, cfg))
		{
			authed.GET("/me", auth.Me(db))
			authed.POST("/logout", auth.Logout(db))
		}
	}
}
