package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"fairway_backend/database"
	"fairway_backend/internal/app"
	"fairway_backend/internal/config"
	"fairway_backend/internal/logger"
	"fairway_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer drives the fully wired router in-process. SendRequest
// injects an open transaction into the request context, which
// DBMiddleware picks up instead of the pool, so each test's writes
// roll back when the test ends.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer connects to TEST_DATABASE_URL, migrates the schema and
// builds the router. Tests are skipped when the variable is unset.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDSN := os.Getenv("TEST_DATABASE_URL")
	if testDSN == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}

	os.Setenv("DATABASE_URL", testDSN)
	os.Setenv("SERVER_ENV", "test")
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "integration-test-secret")
	}

	gin.SetMode(gin.TestMode)

	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestServer{
		Router: app.SetupRouter(cfg, db),
		DB:     db,
	}
}

// Close releases the underlying connection pool.
func (ts *TestServer) Close() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// Begin opens a transaction that SendRequest routes every statement
// through, and registers its rollback with the test.
func (ts *TestServer) Begin(t *testing.T) *gorm.DB {
	t.Helper()

	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Failed to begin test transaction: %v", tx.Error)
	}
	t.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}

// SendRequest runs one request through the router inside tx and
// returns the response with its body.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
	req = req.WithContext(ctx)

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)

	res := w.Result()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}
