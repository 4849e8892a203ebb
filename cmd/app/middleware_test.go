package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string {
	return &s
}

func TestRecoverPanic(t *testing.T) {
	app, _ := newTestApplication(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestAuthenticate(t *testing.T) {
	app, _ := newTestApplication(t)

	createTestUser(t, app, "testuser", "Test User", "secret")

	tests := []struct {
		name           string
		authHeader     func() *string
		expectedStatus int
	}{
		{
			name:           "no authentication header",
			authHeader:     func() *string { return nil },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed authentication header",
			authHeader:     func() *string { return strptr("") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     func() *string { return strptr("invalid-token") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid token",
			authHeader: func() *string {
				return strptr(loginTestUser(t, app, "testuser", "secret"))
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			middleware := app.authenticate(handler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if token := tt.authHeader(); token != nil {
				req.Header.Set("Authorization", "Bearer "+*token)
			}

			res := httptest.NewRecorder()

			middleware.ServeHTTP(res, req)

			assert.Equal(t, tt.expectedStatus, res.Code)
			assert.Equal(t, "Authorization", res.Header().Get("Vary"))
		})
	}
}

func TestRequireAuthUser(t *testing.T) {
	app, _ := newTestApplication(t)

	createTestUser(t, app, "testuser", "Test User", "secret")
	token := loginTestUser(t, app, "testuser", "secret")

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.authenticate(app.requireAuthUser(handler))

	t.Run("anonymous request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		middleware.ServeHTTP(res, req)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("authenticated request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res := httptest.NewRecorder()

		middleware.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
	})
}
