package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/brightcart/storefront-api/controllers/product"

	"github.com/brightcart/storefront-api/config"
	"github.com/brightcart/storefront-api/middleware"
	"github.com/brightcart/storefront-api/models"
)

// SetupAdminRoutes registers the role-gated catalog management endpoints.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(db, cfg), middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.POST("/products", productcontroller.CreateProduct(db))
		adminGroup.PUT("/products/:id", productcontroller.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productcontroller.DeleteProduct(db))
		adminGroup.GET("/products/export", productcontroller.ExportProductsToExcel(db))

		adminGroup.POST("/categories", productcontroller.CreateCategory(db))
	}
}
