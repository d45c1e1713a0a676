package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/brightcart/storefront-api/controllers/cart"

	"github.com/brightcart/storefront-api/config"
	"github.com/brightcart/storefront-api/middleware"
)

// SetupCartRoutes registers the "/api/cart" endpoints. Requires JWT middleware.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.RequireAuth(db, cfg))
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("", cartControllers.AddToCart(db))
	}
}
