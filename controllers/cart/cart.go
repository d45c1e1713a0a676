package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/brightcart/storefront-api/models"
)

type AddToCartInput struct {
	ProductID     uint   `json:"productId" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required"`
	SelectedColor string `json:"selectedColor"`
	SelectedSize  string `json:"selectedSize"`
}

// CartLineView is a cart line joined with product and category display
// fields. The join is read-side convenience only; the write path touches
// nothing but cart_lines.
type CartLineView struct {
	models.CartLine
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	OriginalPrice float64           `json:"originalPrice"`
	Images        models.StringList `json:"images"`
	InStock       bool              `json:"inStock"`
	StockQuantity int               `json:"stockQuantity"`
	Brand         string            `json:"brand"`
	Category      string            `json:"category"`
}

func cartViewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("cart_lines").
		Select(`cart_lines.*,
			products.name AS name,
			products.description AS description,
			products.price AS price,
			products.original_price AS original_price,
			products.images AS images,
			products.in_stock AS in_stock,
			products.stock_quantity AS stock_quantity,
			products.brand AS brand,
			categories.name AS category`).
		Joins("JOIN products ON products.id = cart_lines.product_id").
		Joins("JOIN categories ON categories.id = products.category_id")
}

// addLine validates the request against the catalog snapshot and inserts
// or merges the cart line in a single atomic statement.
//
// The existence check and the merge arithmetic never run as separate
// read-then-write steps: the tuple's unique index plus an
// insert-on-conflict that recomputes quantity server-side and refuses
// the update when the merged total would exceed stock makes concurrent
// duplicate inserts collapse into one line and makes overselling
// impossible. A rejected merge reports RowsAffected == 0.
func addLine(db *gorm.DB, userID uint, input AddToCartInput) (*models.CartLine, error) {
	var line models.CartLine

	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		// stock_quantity is the source of truth; the in_stock flag is a
		// display cache and is not trusted here.
		if product.StockQuantity < input.Quantity {
			return &InsufficientStockError{ProductID: product.ID, Available: product.StockQuantity}
		}

		if input.SelectedColor != "" && !product.ColorAvailable(input.SelectedColor) {
			return &VariantError{Kind: "color", Value: input.SelectedColor}
		}
		if input.SelectedSize != "" && !product.HasSize(input.SelectedSize) {
			return &VariantError{Kind: "size", Value: input.SelectedSize}
		}

		line = models.CartLine{
			UserID:        userID,
			ProductID:     product.ID,
			SelectedColor: input.SelectedColor,
			SelectedSize:  input.SelectedSize,
			Quantity:      input.Quantity,
		}

		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "product_id"},
				{Name: "selected_color"},
				{Name: "selected_size"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_lines.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("cart_lines.quantity + excluded.quantity <= ?", product.StockQuantity),
			}},
		}).Create(&line)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Conflict hit an existing line and the merged total was
			// over the ceiling; the line is untouched.
			var existing models.CartLine
			if err := tx.Where(
				"user_id = ? AND product_id = ? AND selected_color = ? AND selected_size = ?",
				userID, product.ID, input.SelectedColor, input.SelectedSize,
			).First(&existing).Error; err != nil {
				return err
			}
			return &InsufficientStockError{
				ProductID: product.ID,
				Available: product.StockQuantity - existing.Quantity,
			}
		}

		// Reload: on a merge the statement computed the quantity
		// server-side, so the struct does not have it yet.
		return tx.Where(
			"user_id = ? AND product_id = ? AND selected_color = ? AND selected_size = ?",
			userID, product.ID, input.SelectedColor, input.SelectedSize,
		).First(&line).Error
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// POST /api/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "error": "Invalid input: quantity must be at least 1 and productId is required"})
			return
		}

		line, err := addLine(db, userID, input)
		if err != nil {
			var stockErr *InsufficientStockError
			var variantErr *VariantError
			switch {
			case errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"code": "PRODUCT_NOT_FOUND", "error": "Product does not exist"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusBadRequest, gin.H{"code": "INSUFFICIENT_STOCK", "error": stockErr.Error()})
			case errors.As(err, &variantErr):
				c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_VARIANT", "error": variantErr.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to add item to cart"})
			}
			return
		}

		var view CartLineView
		if err := cartViewQuery(db).Where("cart_lines.id = ?", line.ID).Scan(&view).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to fetch cart item"})
			return
		}

		c.JSON(http.StatusCreated, view)
	}
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"code": "INVALID_CREDENTIAL", "error": "Unauthorized"})
			return
		}
		userID := userIDVal.(uint)

		views := []CartLineView{}
		if err := cartViewQuery(db).
			Where("cart_lines.user_id = ?", userID).
			Order("cart_lines.created_at").
			Scan(&views).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"code": "SERVER_ERROR", "error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, views)
	}
}
