package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleLogin_RedirectsWithState(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/auth/google?admin=true", nil, "", nil)
	require.Equal(t, http.StatusFound, resp.Code)

	location, err := url.Parse(resp.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", location.Host)
	assert.NotEmpty(t, location.Query().Get("state"))
	assert.Contains(t, location.Query().Get("scope"), "email")

	// The state lives in the session cookie for the callback check.
	assert.NotEmpty(t, resp.Result().Cookies())
}

func TestGoogleCallback_RejectsStateMismatch(t *testing.T) {
	env := newTestEnv(t)

	login := env.do(http.MethodGet, "/auth/google", nil, "", nil)
	require.Equal(t, http.StatusFound, login.Code)
	cookies := login.Result().Cookies()

	resp := env.do(http.MethodGet, "/auth/google/callback?state=forged&code=abc", nil, "", cookies)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "invalid_oauth_state")
}

func TestGoogleCallback_RejectsMissingState(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/auth/google/callback?code=abc", nil, "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAdminSession_WithoutSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(http.MethodGet, "/api/admin/session", nil, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "admin_session_not_found")
}

func TestAdminSession_NonAdminGets401(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.clientCookies(t, 3, "client@example.com")

	resp := env.do(http.MethodGet, "/api/admin/session", nil, "", cookies)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAdminSession_ReturnsIdentity(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.adminCookies(t)

	resp := env.do(http.MethodGet, "/api/admin/session", nil, "", cookies)
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "admin@example.com", payload["email"])
	assert.Equal(t, "Admin User", payload["name"])
}

func TestLogout_ClearsSession(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.adminCookies(t)

	logout := env.do(http.MethodPost, "/api/admin/logout", nil, "", cookies)
	require.Equal(t, http.StatusOK, logout.Code)
	assert.Contains(t, logout.Body.String(), "Logged out successfully")

	// Replaying the cleared cookie no longer grants a session.
	cleared := logout.Result().Cookies()
	resp := env.do(http.MethodGet, "/api/admin/session", nil, "", cleared)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
