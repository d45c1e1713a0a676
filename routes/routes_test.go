package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brightcart/storefront-api/auth"
	"github.com/brightcart/storefront-api/config"
	"github.com/brightcart/storefront-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testConfig = &config.Config{
	JWTSecret:  "test-secret",
	TokenTTL:   time.Hour,
	BcryptCost: bcrypt.MinCost,
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "api.db") + "?_pragma=busy_timeout(10000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartLine{},
		&models.RevokedToken{},
	))

	r := gin.New()
	SetupRoutes(r, db, testConfig)
	return r, db
}

func seedCatalogProduct(t *testing.T, db *gorm.DB, stock int) *models.Product {
	t.Helper()

	category := &models.Category{Name: "Audio", Description: "Audio gear"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{
		CategoryID:    category.ID,
		Name:          "Desk Speaker",
		Description:   "Compact bluetooth speaker",
		Price:         49.99,
		OriginalPrice: 59.99,
		StockQuantity: stock,
		Brand:         "Soundline",
		SKU:           "SL-200",
		Badge:         "Bestseller",
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func registerUser(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"firstName": "Alice",
		"username":  username,
		"email":     email,
		"password":  password,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	token, ok := decode(t, w)["access_token"].(string)
	require.True(t, ok)
	return token
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestServer(t)

	// Weak passwords never reach the user table.
	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"firstName": "Alice",
		"username":  "alice",
		"email":     "alice@example.com",
		"password":  "abc12345",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w)["code"])

	registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	// Same username again, even with another email.
	w = doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"firstName": "Alice",
		"username":  "alice",
		"email":     "alice2@example.com",
		"password":  "Abc12345!",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "USERNAME_TAKEN", decode(t, w)["code"])
}

func TestLogin(t *testing.T) {
	r, _ := newTestServer(t)
	registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "Abc12345!",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["access_token"])

	// Wrong password and unknown email answer identically.
	for _, body := range []gin.H{
		{"email": "alice@example.com", "password": "Wrong123!"},
		{"email": "nobody@example.com", "password": "Abc12345!"},
	} {
		w = doJSON(r, http.MethodPost, "/api/auth/login", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decode(t, w)["code"])
	}
}

func TestMeOmitsPassword(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	w := doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "USER", body["role"])
	assert.NotContains(t, w.Body.String(), "password")
}

// Register -> me -> add to cart until the stock ceiling trips.
func TestCartScenario(t *testing.T) {
	r, db := newTestServer(t)
	product := seedCatalogProduct(t, db, 5)
	token := registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	w := doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "USER", decode(t, w)["role"])

	w = doJSON(r, http.MethodPost, "/api/cart", token, gin.H{"productId": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["quantity"])

	w = doJSON(r, http.MethodPost, "/api/cart", token, gin.H{"productId": product.ID, "quantity": 4})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 5, decode(t, w)["quantity"])

	w = doJSON(r, http.MethodPost, "/api/cart", token, gin.H{"productId": product.ID, "quantity": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode(t, w)["code"])

	w = doJSON(r, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lines []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.EqualValues(t, 5, lines[0]["quantity"])
	assert.Equal(t, "Desk Speaker", lines[0]["name"])
	assert.Equal(t, "Audio", lines[0]["category"])
}

func TestCartRejectsBadRequests(t *testing.T) {
	r, db := newTestServer(t)
	product := seedCatalogProduct(t, db, 5)
	token := registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	w := doJSON(r, http.MethodPost, "/api/cart", token, gin.H{"productId": product.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w)["code"])

	w = doJSON(r, http.MethodPost, "/api/cart", token, gin.H{"productId": 9999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decode(t, w)["code"])

	w = doJSON(r, http.MethodPost, "/api/cart", "", gin.H{"productId": product.ID, "quantity": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIAL", decode(t, w)["code"])
}

func TestLogoutRevokesToken(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	w := doJSON(r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Signature and expiry are still fine; the jti is denylisted.
	w = doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIAL", decode(t, w)["code"])
}

func TestAdminRoleGate(t *testing.T) {
	r, db := newTestServer(t)
	userToken := registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	body := gin.H{"name": "Clearance", "description": "End of line"}

	w := doJSON(r, http.MethodPost, "/api/admin/categories", userToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, w)["code"])

	admin := models.User{
		FirstName: "Root",
		Username:  "root",
		Email:     "root@example.com",
		Password:  "x",
		Role:      models.RoleAdmin,
	}
	require.NoError(t, db.Create(&admin).Error)
	adminToken, err := auth.IssueToken([]byte(testConfig.JWTSecret), admin.ID, admin.Role, time.Hour)
	require.NoError(t, err)

	w = doJSON(r, http.MethodPost, "/api/admin/categories", adminToken, body)
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
}

func TestProductReads(t *testing.T) {
	r, db := newTestServer(t)
	product := seedCatalogProduct(t, db, 5)

	w := doJSON(r, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Desk Speaker", body["name"])
	assert.Equal(t, "Audio", body["category"])

	w = doJSON(r, http.MethodGet, "/api/products/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var featured []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &featured))
	assert.Len(t, featured, 1, "badge + in-stock product is featured")

	w = doJSON(r, http.MethodGet, "/api/products/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmissionRedirects(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerUser(t, r, "alice", "alice@example.com", "Abc12345!")

	// Anonymous on a protected page: off to login, original path preserved.
	w := doJSON(r, http.MethodGet, "/cart", "", nil)
	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/login", loc.Path)
	assert.Equal(t, "/cart", loc.Query().Get("redirect"))
	assert.Equal(t, "login-required", loc.Query().Get("message"))

	// Authenticated on an auth page: back home with a reason.
	w = doJSON(r, http.MethodGet, "/login", token, nil)
	require.Equal(t, http.StatusFound, w.Code)
	loc, err = url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/", loc.Path)
	assert.Equal(t, "already-logged-in", loc.Query().Get("message"))

	// Authenticated on a protected page: pass through, cookie mirrored.
	w = doJSON(r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "auth-token=")
}
