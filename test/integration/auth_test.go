package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"fairway_backend/internal/models"
	"fairway_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.Begin(t)

	email := fmt.Sprintf("golfer_%d@test.com", time.Now().UnixNano())

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/register", "", map[string]interface{}{
		"name":     "New Golfer",
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Register should succeed, got: "+body)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotEmpty(t, resp.Token)

	// The account must be usable straight away.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/account", resp.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.Begin(t)

	_, user := helpers.CreateAndLoginUser(ts, t, tx, "First Golfer")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/register", "", map[string]interface{}{
		"name":     "Second Golfer",
		"email":    user.Email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// The failed attempt must not leave a second row behind.
	var count int64
	require.NoError(t, tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.Begin(t)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/register", "", map[string]interface{}{
		"name":     "Short Password",
		"email":    fmt.Sprintf("short_%d@test.com", time.Now().UnixNano()),
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.Begin(t)

	_, user := helpers.CreateAndLoginUser(ts, t, tx, "Login Golfer")

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.NotContains(t, body, `"token"`)
}

func TestLoginUnknownEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.Begin(t)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "password123",
	})
	// Unknown email and bad password answer identically.
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.NotContains(t, body, `"token"`)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.Begin(t)

	for _, path := range []string{"/courses", "/account"} {
		res, body := ts.SendRequest(t, tx, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode, "%s: %s", path, body)
	}
}
