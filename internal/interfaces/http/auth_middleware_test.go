package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplusmed/marketplace-api/internal/application/ports"
	"github.com/aplusmed/marketplace-api/internal/application/session"
	"github.com/aplusmed/marketplace-api/internal/domain/entity"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/apps"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/directory"
	"github.com/aplusmed/marketplace-api/internal/infrastructure/state"
	apphttp "github.com/aplusmed/marketplace-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestSessions(t *testing.T) *session.Store {
	t.Helper()
	st, err := state.NewFileStore(afero.NewMemMapFs(), "state")
	require.NoError(t, err)
	return session.New(directory.NewMemoryWithDemoAccounts(), apps.NewMemory(), st, ports.NoWait, session.Config{
		TokenSecret: "test-secret-key-for-unit-tests",
		TokenIssuer: "marketplace-test",
		TokenTTL:    time.Hour,
	})
}

// buildTestApp mounts one protected route behind the route guard:
// RequireAuth resolves the identity from the session store, RequireRole
// authorizes it, and the dummy handler answers 200 with the resolved email.
func buildTestApp(sessions *session.Store, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.RequireAuth(sessions),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			u := apphttp.CurrentUser(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"email": u.Email,
				"role":  u.Role,
			})
		},
	)
	return app
}

func doRequest(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, sessions *session.Store, email string) {
	t.Helper()
	_, err := sessions.Login(context.Background(), email, "pw")
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAuth
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAuth_AnonymousGets401(t *testing.T) {
	sessions := newTestSessions(t)
	app := buildTestApp(sessions, entity.RoleAdmin)

	resp := doRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "LOGIN_REQUIRED")
}

func TestRequireAuth_LogoutRevokesAccess(t *testing.T) {
	sessions := newTestSessions(t)
	app := buildTestApp(sessions, entity.RoleAdmin)

	login(t, sessions, "admin@aplusmed.com")
	resp := doRequest(t, app)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	sessions.Logout()
	resp = doRequest(t, app)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminReachesAdminRoute(t *testing.T) {
	sessions := newTestSessions(t)
	app := buildTestApp(sessions, entity.RoleAdmin)
	login(t, sessions, "admin@aplusmed.com")

	resp := doRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin@aplusmed.com", body["email"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestRequireRole_CustomerBlockedOnAdminRoute(t *testing.T) {
	sessions := newTestSessions(t)
	app := buildTestApp(sessions, entity.RoleAdmin)
	login(t, sessions, "john@hospital.com")

	resp := doRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_VendorBlockedOnAdminRoute(t *testing.T) {
	sessions := newTestSessions(t)
	app := buildTestApp(sessions, entity.RoleAdmin)
	login(t, sessions, "supplier@medtech.com")

	resp := doRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_MultiRoleRoute(t *testing.T) {
	sessions := newTestSessions(t)
	app := buildTestApp(sessions, entity.RoleAdmin, entity.RoleVendor)
	login(t, sessions, "supplier@medtech.com")

	resp := doRequest(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
