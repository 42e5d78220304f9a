package integration_test

import (
	"os"
	"sync"
	"testing"

	"fairway_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer returns the shared test server, building it on first
// use. Each test isolates its writes with its own transaction.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}
