package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("CreatesUserWithoutToken", func(t *testing.T) {
		body := doJSON(t, app, http.MethodPost, "/register", "", map[string]any{
			"name": "Sam", "email": "sam@example.com", "password": "hunter22",
		}, http.StatusCreated)

		assert.Equal(t, true, body["auth"])
		assert.NotContains(t, body, "token")

		user := body["user"].(map[string]any)
		assert.Equal(t, "user", user["role"])
		assert.NotContains(t, user, "password")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		body := doJSON(t, app, http.MethodPost, "/register", "", map[string]any{
			"name": "Sam Again", "email": "sam@example.com", "password": "hunter22",
		}, http.StatusConflict)
		assert.Equal(t, false, body["auth"])
	})

	t.Run("MissingFields", func(t *testing.T) {
		doJSON(t, app, http.MethodPost, "/register", "", map[string]any{
			"email": "nobody@example.com",
		}, http.StatusBadRequest)
	})
}

func TestCreateAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("CreatesAdminWithToken", func(t *testing.T) {
		body := doJSON(t, app, http.MethodPost, "/super/createAdmin", "", map[string]any{
			"name": "Avery", "email": "avery@example.com", "password": "hunter22",
			"clubName": "Chess Club", "securityKey": testSecurityKey,
		}, http.StatusCreated)

		assert.Equal(t, true, body["auth"])
		assert.NotEmpty(t, body["token"])

		admin := body["user"].(map[string]any)
		assert.Equal(t, "admin", admin["role"])
		assert.Equal(t, "Chess Club", admin["clubName"])
		assert.NotContains(t, admin, "password")
	})

	t.Run("WrongSecurityKey", func(t *testing.T) {
		body := doJSON(t, app, http.MethodPost, "/super/createAdmin", "", map[string]any{
			"name": "Mallory", "email": "mallory@example.com", "password": "hunter22",
			"clubName": "Lockpicking Club", "securityKey": "guess",
		}, http.StatusForbidden)
		assert.Equal(t, false, body["auth"])
	})
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)
	seedUser(t, app, "sam@example.com")
	seedAdmin(t, app, "avery@example.com", "Chess Club")

	t.Run("UserLogin", func(t *testing.T) {
		body := doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
			"email": "sam@example.com", "password": "hunter22", "role": "user",
		}, http.StatusOK)

		assert.Equal(t, true, body["auth"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("AdminLogin", func(t *testing.T) {
		body := doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
			"email": "avery@example.com", "password": "hunter22", "role": "admin",
		}, http.StatusOK)

		user := body["user"].(map[string]any)
		assert.Equal(t, "admin", user["role"])
	})

	t.Run("RoleSelectsCollection", func(t *testing.T) {
		// The admin's email does not exist in the users collection.
		body := doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
			"email": "avery@example.com", "password": "hunter22", "role": "user",
		}, http.StatusUnauthorized)
		assert.Equal(t, false, body["auth"])
	})

	t.Run("WrongPassword", func(t *testing.T) {
		doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
			"email": "sam@example.com", "password": "wrong", "role": "user",
		}, http.StatusUnauthorized)
	})

	t.Run("InvalidRole", func(t *testing.T) {
		doJSON(t, app, http.MethodPost, "/login", "", map[string]any{
			"email": "sam@example.com", "password": "hunter22", "role": "superuser",
		}, http.StatusBadRequest)
	})
}

func TestProfile(t *testing.T) {
	app, _ := newTestApp(t)
	user, token := seedUser(t, app, "sam@example.com")

	t.Run("ReturnsOwnRecord", func(t *testing.T) {
		body := doJSON(t, app, http.MethodGet, "/profile", token, nil, http.StatusOK)
		got := body["user"].(map[string]any)
		require.Equal(t, user.ID, got["id"])
		assert.Equal(t, "Sam", got["name"])
	})

	t.Run("RequiresAuth", func(t *testing.T) {
		doJSON(t, app, http.MethodGet, "/profile", "", nil, http.StatusUnauthorized)
	})
}
