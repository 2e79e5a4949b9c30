package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElkinVA/MyBiz-Project/internal/auth"
)

func adminAuthStatus(t *testing.T, jwtKey []byte, header string) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", AdminAuth(nil, jwtKey), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestAdminAuthRejectsBeforeTouchingTheDatabase(t *testing.T) {
	key := []byte("guard-key")

	assert.Equal(t, http.StatusUnauthorized, adminAuthStatus(t, key, ""))
	assert.Equal(t, http.StatusUnauthorized, adminAuthStatus(t, key, "Token abc"))
	assert.Equal(t, http.StatusUnauthorized, adminAuthStatus(t, key, "Bearer not.a.token"))
}

func TestAdminAuthUsesTheInjectedKey(t *testing.T) {
	token, err := auth.GenerateToken([]byte("the-real-key"), 1)
	require.NoError(t, err)

	// A token signed with a different key never reaches the account check.
	code := adminAuthStatus(t, []byte("some-other-key"), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, code)
}
