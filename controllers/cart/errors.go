package cartControllers

import (
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")

// VariantError reports a requested color or size the product does not
// offer (or offers but has marked unavailable).
type VariantError struct {
	Kind  string // "color" or "size"
	Value string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("invalid or unavailable %s: %s", e.Kind, e.Value)
}

// InsufficientStockError reports how many more units can actually be
// added on top of what the cart already holds.
type InsufficientStockError struct {
	ProductID uint
	Available int
}

func (e *InsufficientStockError) Error() string {
	if e.Available <= 0 {
		return fmt.Sprintf("product %d is out of stock", e.ProductID)
	}
	return fmt.Sprintf("cannot add that many: only %d more available for product %d", e.Available, e.ProductID)
}
