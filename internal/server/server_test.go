package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubverse/internal/config"
	"clubverse/internal/models"
	"clubverse/internal/service"
	"clubverse/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const (
	testSecret      = "handler-test-secret-1234567890123456789012345678"
	testSecurityKey = "handler-test-security-key"
)

// newTestApp builds a full app over real collections in a temp dir, with no
// Redis and no assistant. Requests exercise the same wiring production uses.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	cfg := &config.Config{
		Env:                 "test",
		JWTSecret:           testSecret,
		AdminSecurityKey:    testSecurityKey,
		DataDir:             t.TempDir(),
		StrictPostOwnership: true,
	}

	collections, err := store.Open(cfg.DataDir, nil)
	require.NoError(t, err)

	s := NewServerWithDeps(cfg, collections, nil)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

func tokenFor(t *testing.T, p models.Principal) string {
	t.Helper()
	token, err := service.IssueToken(testSecret, p)
	require.NoError(t, err)
	return token
}

// seedAdmin creates an admin through the API and returns its record.
func seedAdmin(t *testing.T, app *fiber.App, email, clubName string) (models.Admin, string) {
	t.Helper()

	body := doJSON(t, app, http.MethodPost, "/super/createAdmin", "", map[string]any{
		"name":        "Avery",
		"email":       email,
		"password":    "hunter22",
		"clubName":    clubName,
		"securityKey": testSecurityKey,
	}, http.StatusCreated)

	raw, err := json.Marshal(body["user"])
	require.NoError(t, err)
	var admin models.Admin
	require.NoError(t, json.Unmarshal(raw, &admin))
	return admin, body["token"].(string)
}

// seedUser registers a user and returns its record plus a token.
func seedUser(t *testing.T, app *fiber.App, email string) (models.User, string) {
	t.Helper()

	body := doJSON(t, app, http.MethodPost, "/register", "", map[string]any{
		"name":     "Sam",
		"email":    email,
		"password": "hunter22",
	}, http.StatusCreated)

	raw, err := json.Marshal(body["user"])
	require.NoError(t, err)
	var user models.User
	require.NoError(t, json.Unmarshal(raw, &user))

	token := tokenFor(t, models.Principal{
		ID: user.ID, Email: user.Email, Role: user.Role, Name: user.Name,
	})
	return user, token
}

// doJSON issues a JSON request and decodes the JSON object response,
// asserting the status code.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any, wantStatus int) map[string]any {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		// Some endpoints return JSON arrays; callers decode those themselves.
		return nil
	}
	return body
}

// doJSONList is doJSON for endpoints that respond with a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path, token string, wantStatus int) []map[string]any {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}
