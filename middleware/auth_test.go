package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anderson-code22/lojavirtual/auth"
	"github.com/anderson-code22/lojavirtual/models"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/me", ValidateToken, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/admin", ValidateToken, RequireAdmin, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func tokenFor(t *testing.T, user models.User) string {
	token, err := auth.IssueToken(user)
	require.NoError(t, err)
	return token
}

func TestValidateTokenMissingHeader(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenGarbage(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidateTokenAcceptsIssuedToken(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.User{ID: "u-1", Name: "Ana"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestRequireAdminBlocksCustomers(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.User{ID: "u-1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmins(t *testing.T) {
	r := setupRouter(t)
	token := tokenFor(t, models.User{ID: "u-2", IsAdmin: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
