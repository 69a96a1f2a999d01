package integration_test

import (
	"log"
	"os"
	"sync"
	"testing"

	"autobuy_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer starts the shared server on first use.
func GetTestServer(t *testing.T) *helpers.TestServer {
	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret-12345")
		}
		os.Setenv("SERVER_ENV", "test")

		log.Println("--- [GetTestServer] Initializing test server ---")
		globalTestServer = helpers.NewTestServer(t)
		log.Println("--- [GetTestServer] Test server ready ---")
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	// These tests need a live Postgres; skip the package without one.
	if os.Getenv("DATABASE_URL") == "" {
		log.Println("DATABASE_URL is not set, skipping integration tests")
		os.Exit(0)
	}

	code := m.Run()

	if globalTestServer != nil {
		log.Println("--- [TestMain] Cleaning up ---")
		globalTestServer.Close()
	}
	os.Exit(code)
}
