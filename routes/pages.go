package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightcart/storefront-api/middleware"
)

// storefrontPages maps page path to page title. The handlers are thin
// shells; all real data comes from the /api endpoints. What matters here
// is that every page passes through the admission gate first.
var storefrontPages = map[string]string{
	"/":                "Home",
	"/login":           "Log in",
	"/register":        "Register",
	"/forgot-password": "Forgot password",
	"/reset-password":  "Reset password",
	"/cart":            "Cart",
	"/checkout":        "Checkout",
	"/profile":         "Profile",
	"/dashboard":       "Dashboard",
	"/orders":          "Orders",
	"/wishlist":        "Wishlist",
	"/account":         "Account",
}

// SetupPageRoutes registers the storefront pages behind the admission gate.
func SetupPageRoutes(r *gin.Engine) {
	pages := r.Group("")
	pages.Use(middleware.PageAdmission())
	for path, title := range storefrontPages {
		pages.GET(path, pageHandler(title))
	}
}

func pageHandler(title string) gin.HandlerFunc {
	body := fmt.Sprintf(
		"<!DOCTYPE html><html><head><title>%s</title></head><body><div id=\"app\" data-page=\"%s\"></div></body></html>",
		title, title,
	)
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
	}
}
