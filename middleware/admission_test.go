package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightcart/storefront-api/auth"
	"github.com/brightcart/storefront-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMatchesAny(t *testing.T) {
	assert.True(t, matchesAny("/cart", protectedPaths))
	assert.True(t, matchesAny("/orders/42", protectedPaths))
	assert.False(t, matchesAny("/cartoons", protectedPaths), "prefix match must respect path segments")
	assert.False(t, matchesAny("/", protectedPaths))
}

func gateRouter(paths ...string) *gin.Engine {
	r := gin.New()
	r.Use(PageAdmission())
	for _, p := range paths {
		r.GET(p, func(c *gin.Context) { c.Status(http.StatusOK) })
	}
	return r
}

func TestPageAdmissionAnonymousPassesPublicPages(t *testing.T) {
	r := gateRouter("/", "/products")

	for _, path := range []string{"/", "/products"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestPageAdmissionExpiredTokenTreatedAsAnonymous(t *testing.T) {
	expired, err := auth.IssueToken([]byte("secret"), 1, models.RoleUser, -time.Minute)
	require.NoError(t, err)

	r := gateRouter("/cart")
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+expired)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestPageAdmissionReadsCookie(t *testing.T) {
	token, err := auth.IssueToken([]byte("secret"), 1, models.RoleUser, time.Hour)
	require.NoError(t, err)

	r := gateRouter("/cart")
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "auth-token", Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
