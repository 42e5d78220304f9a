package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fairway_backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecret = "middleware-test-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	w := doRequest(t, protectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	w := doRequest(t, protectedRouter(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RawToken(t *testing.T) {
	token, err := auth.GenerateToken("user-42", testSecret, time.Hour)
	assert.NoError(t, err)

	w := doRequest(t, protectedRouter(), token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	token, err := auth.GenerateToken("user-42", testSecret, time.Hour)
	assert.NoError(t, err)

	w := doRequest(t, protectedRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := auth.GenerateToken("user-42", testSecret, -time.Minute)
	assert.NoError(t, err)

	w := doRequest(t, protectedRouter(), token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
