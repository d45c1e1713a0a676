package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brightcart/storefront-api/config"
)

// SetupRoutes is the single entry point that wires up all route groups.
// The JSON API lives under /api; storefront pages sit at the root behind
// the admission gate.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db, cfg)
	SetupProductRoutes(api, db)
	SetupCartRoutes(api, db, cfg)
	SetupAdminRoutes(api, db, cfg)

	SetupPageRoutes(r)
}
