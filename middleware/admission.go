package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brightcart/storefront-api/auth"
)

// Page paths that need a logged-in user, and the auth pages a logged-in
// user should be bounced away from. Mirrors the storefront client's
// route map.
var (
	protectedPaths = []string{
		"/profile", "/dashboard", "/orders", "/wishlist",
		"/cart", "/checkout", "/account",
	}
	authPaths = []string{
		"/login", "/register", "/forgot-password", "/reset-password",
	}
)

const authCookieMaxAge = 60 * 60 * 24 * 7 // 7 days

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// PageAdmission decides, before any page renders, whether the request
// carries a syntactically usable credential and redirects accordingly.
// Only well-formedness and expiry are checked here; signature
// verification happens in RequireAuth on the APIs the pages call, so a
// forged token gets past this gate but nowhere else.
func PageAdmission() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		token := TokenFromRequest(c)
		valid := token != "" && auth.TokenUsable(token)

		if valid && matchesAny(path, authPaths) {
			q := url.Values{}
			q.Set("message", "already-logged-in")
			c.Redirect(http.StatusFound, "/?"+q.Encode())
			c.Abort()
			return
		}

		if !valid && matchesAny(path, protectedPaths) {
			q := url.Values{}
			q.Set("redirect", path)
			q.Set("message", "login-required")
			c.Redirect(http.StatusFound, "/login?"+q.Encode())
			c.Abort()
			return
		}

		if valid {
			// Mirror the credential into a client-readable cookie so
			// page scripts can read and clear it (logout is client-side
			// deletion plus the /auth/logout denylist call).
			c.SetCookie("auth-token", token, authCookieMaxAge, "/", "", false, false)
		}

		c.Next()
	}
}
