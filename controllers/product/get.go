package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightcart/storefront-api/models"
)

// ProductView is a product joined with its category name for display.
type ProductView struct {
	models.Product
	Category string `json:"category"`
}

func productViewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("products").
		Select("products.*, categories.name AS category").
		Joins("JOIN categories ON categories.id = products.category_id")
}

// GET /api/products/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /api/products/featured
func GetFeaturedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := []ProductView{}
		if err := productViewQuery(db).
			Where("products.badge <> ''").
			Where("products.in_stock = ?", true).
			Order("products.rating DESC").
			Limit(6).
			Scan(&views).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid product ID"})
			return
		}

		var view ProductView
		res := productViewQuery(db).Where("products.id = ?", id).Scan(&view)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to retrieve product"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"code": "PRODUCT_NOT_FOUND", "error": "Product does not exist"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// GET /api/products/categories/:categoryId/products
func GetProductsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.Atoi(c.Param("categoryId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid category ID"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Category does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to retrieve category"})
			}
			return
		}

		views := []ProductView{}
		if err := productViewQuery(db).
			Where("products.category_id = ?", categoryID).
			Order("products.rating DESC").
			Scan(&views).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":           category.ID,
			"name":         category.Name,
			"description":  category.Description,
			"productCount": category.ItemCount,
			"products":     views,
		})
	}
}
