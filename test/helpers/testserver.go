package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"crewboard_backend/database"
	"crewboard_backend/internal/app"
	"crewboard_backend/internal/config"
	"crewboard_backend/pkg/contextkeys"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps the real router over httptest. Each test runs inside a
// database transaction that is rolled back afterwards, so tests never leak
// rows into each other.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB

	mu sync.Mutex
	tx *gorm.DB
}

// NewTestServer connects to the test database from DATABASE_URL, migrates it
// and starts the full application router.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)

	ts := &TestServer{DB: db}

	// The injector runs before the router sees the request. When a test
	// transaction is open it is attached to the request context, where
	// DBMiddleware picks it over the shared pool.
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.mu.Lock()
		tx := ts.tx
		ts.mu.Unlock()
		if tx != nil {
			ctx := context.WithValue(r.Context(), contextkeys.DBContextKey, tx)
			r = r.WithContext(ctx)
		}
		router.ServeHTTP(w, r)
	}))

	return ts
}

// BeginTransaction opens the transaction subsequent requests will run in.
// Tests using this must not run in parallel against the same server.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin test transaction: %v", tx.Error)
	}

	ts.mu.Lock()
	ts.tx = tx
	ts.mu.Unlock()

	return tx
}

func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	ts.mu.Lock()
	ts.tx = nil
	ts.mu.Unlock()

	if err := tx.Rollback().Error; err != nil {
		t.Logf("rollback of test transaction failed: %v", err)
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
