package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightcart/storefront-api/models"
)

type CreateProductInput struct {
	CategoryID     uint              `json:"categoryId" binding:"required"`
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description" binding:"required"`
	Price          float64           `json:"price" binding:"required"`
	OriginalPrice  float64           `json:"originalPrice"`
	StockQuantity  int               `json:"stockQuantity"`
	Brand          string            `json:"brand" binding:"required"`
	SKU            string            `json:"sku" binding:"required"`
	Images         models.StringList `json:"images"`
	Features       models.StringList `json:"features"`
	Specifications models.SpecMap    `json:"specifications"`
	Colors         models.ColorList  `json:"colors"`
	Sizes          models.StringList `json:"sizes"`
	Badge          string            `json:"badge"`
	BadgeVariant   string            `json:"badgeVariant"`
}

type UpdateProductInput struct {
	CategoryID    *uint              `json:"categoryId"`
	Name          *string            `json:"name"`
	Description   *string            `json:"description"`
	Price         *float64           `json:"price"`
	OriginalPrice *float64           `json:"originalPrice"`
	StockQuantity *int               `json:"stockQuantity"`
	Brand         *string            `json:"brand"`
	SKU           *string            `json:"sku"`
	Images        *models.StringList `json:"images"`
	Features      *models.StringList `json:"features"`
	Colors        *models.ColorList  `json:"colors"`
	Sizes         *models.StringList `json:"sizes"`
	Badge         *string            `json:"badge"`
	BadgeVariant  *string            `json:"badgeVariant"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Category does not exist"})
			return
		}

		originalPrice := input.OriginalPrice
		if originalPrice == 0 {
			originalPrice = input.Price
		}

		product := models.Product{
			CategoryID:     input.CategoryID,
			Name:           input.Name,
			Description:    input.Description,
			Price:          input.Price,
			OriginalPrice:  originalPrice,
			StockQuantity:  input.StockQuantity,
			Brand:          input.Brand,
			SKU:            input.SKU,
			Images:         input.Images,
			Features:       input.Features,
			Specifications: input.Specifications,
			Colors:         input.Colors,
			Sizes:          input.Sizes,
			Badge:          input.Badge,
			BadgeVariant:   input.BadgeVariant,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			return tx.Model(&category).
				UpdateColumn("item_count", gorm.Expr("item_count + 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"code": "PRODUCT_NOT_FOUND", "error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to retrieve product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid input: " + err.Error()})
			return
		}

		if input.CategoryID != nil {
			product.CategoryID = *input.CategoryID
		}
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = *input.OriginalPrice
		}
		if input.StockQuantity != nil {
			product.StockQuantity = *input.StockQuantity
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.SKU != nil {
			product.SKU = *input.SKU
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Features != nil {
			product.Features = *input.Features
		}
		if input.Colors != nil {
			product.Colors = *input.Colors
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.Badge != nil {
			product.Badge = *input.Badge
		}
		if input.BadgeVariant != nil {
			product.BadgeVariant = *input.BadgeVariant
		}

		// Save runs the BeforeSave hook, which recomputes the in_stock
		// display cache from stock_quantity.
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DELETE /api/admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"code": "PRODUCT_NOT_FOUND", "error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to retrieve product"})
			}
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			// Cart lines referencing the product go with it.
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.CartLine{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&product).Error; err != nil {
				return err
			}
			return tx.Model(&models.Category{}).
				Where("id = ? AND item_count > 0", product.CategoryID).
				UpdateColumn("item_count", gorm.Expr("item_count - 1")).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Image       string `json:"image"`
	Color       string `json:"color"`
}

// POST /api/admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
			Color:       input.Color,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}
