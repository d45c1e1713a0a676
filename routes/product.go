package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/brightcart/storefront-api/controllers/product"
)

// SetupProductRoutes registers the public catalog read endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	productGroup := api.Group("/products")
	{
		productGroup.GET("/categories", productcontroller.GetCategories(db))
		productGroup.GET("/categories/:categoryId/products", productcontroller.GetProductsByCategory(db))
		productGroup.GET("/featured", productcontroller.GetFeaturedProducts(db))
		productGroup.GET("/:id", productcontroller.GetProductByID(db))
	}
}
