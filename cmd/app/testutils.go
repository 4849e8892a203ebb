package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"bloglist/internal/blogservice"
	"bloglist/internal/common"
	"bloglist/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := &Config{
		Port:        "0",
		Environment: "test",
		Version:     "test",
		TokenSecret: "test-signing-secret",
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		userService: userservice.NewUserService(db, nil, []byte(cfg.TokenSecret)),
		blogService: blogservice.NewBlogService(db),
	}

	return app, db
}

// do sends a JSON request, optionally authenticated, and returns the raw
// response.
func (ts *testServer) do(t *testing.T, method, path string, payload any, token string) (int, http.Header, []byte) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, res.Header, responseBody
}

func decodeJSON[T any](t *testing.T, body []byte) T {
	var v T
	err := json.Unmarshal(body, &v)
	if err != nil {
		t.Fatalf("could not unmarshal response %q: %v", body, err)
	}

	return v
}

// createTestUser registers a user directly through the service layer.
func createTestUser(t *testing.T, app *application, username, name, password string) *userservice.User {
	user, err := app.userService.CreateUser(context.Background(), username, name, "", password)
	assert.NoError(t, err)

	return user
}

// loginTestUser returns a valid access token for the user.
func loginTestUser(t *testing.T, app *application, username, password string) string {
	result, err := app.userService.LoginUser(context.Background(), username, password)
	assert.NoError(t, err)

	return result.Token
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	var n int
	err := db.QueryRow("SELECT count(*) FROM " + table).Scan(&n)
	assert.NoError(t, err)

	return n
}
