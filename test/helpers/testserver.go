package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"autobuy_backend/internal/app"
	"autobuy_backend/internal/config"
	"autobuy_backend/internal/middleware"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer runs the full HTTP stack against a dedicated test database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to DATABASE_URL, migrates the schema and starts
// an httptest server around the real router.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := app.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{Server: server, DB: db}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// ClearTables empties every table between tests.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()
	err := ts.DB.Exec("TRUNCATE TABLE accounts, buyer_profiles, broker_profiles, products, otp_records, uploads RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("Failed to clear tables: %v", err)
	}
}

// SendRequest performs a JSON request against the running server. A non-empty
// token is attached both as the auth cookie and as a Bearer header, matching
// the two ways clients present a session.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}

// AuthCookie extracts the session cookie set by login or registration.
func AuthCookie(t *testing.T, res *http.Response) string {
	t.Helper()
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.AuthCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatal("Response did not set the auth cookie")
	return ""
}
