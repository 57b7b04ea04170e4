package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cmms-inventario/internal/application/auth"
	"github.com/jhoicas/cmms-inventario/internal/domain"
	apphttp "github.com/jhoicas/cmms-inventario/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAuthenticator resuelve tokens fijos a identidades; cualquier otro token es inválido.
type fakeAuthenticator map[string]*auth.Principal

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*auth.Principal, error) {
	if token == "expirado" {
		return nil, domain.ErrSessionExpired
	}
	p, ok := f[token]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return p, nil
}

var testAuthn = fakeAuthenticator{
	"tok-admin":   {SessionID: "s-1", UserID: 1, Username: "admin", Role: auth.RoleAdmin},
	"tok-tecnico": {SessionID: "s-2", UserID: 2, Username: "tecnico", Role: auth.RoleTechnician},
	"tok-sin-rol": {SessionID: "s-3", UserID: 3, Username: "legacy"},
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para validar el token y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testAuthn),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(auth.RoleAdmin)
	resp := doRequest(t, app, "Bearer tok-admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, auth.RoleAdmin, body["role"])
}

func TestRequireRole_TecnicoAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp(auth.RoleAdmin, auth.RoleTechnician)
	resp := doRequest(t, app, "Bearer tok-tecnico")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_TecnicoBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(auth.RoleAdmin)
	resp := doRequest(t, app, "Bearer tok-tecnico")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(auth.RoleAdmin)
	resp := doRequest(t, app, "Bearer tok-sin-rol")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_RechazaPeticionesSinTokenValido(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"esquema distinto", "Basic abc", "INVALID_TOKEN"},
		{"token vacío", "Bearer   ", "MISSING_TOKEN"},
		{"solo esquema", "Bearer", "MISSING_TOKEN"},
		{"esquema en minúsculas sin token", "bearer", "MISSING_TOKEN"},
		{"token con espacios", "Bearer a b", "INVALID_TOKEN"},
		{"token desconocido", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"sesión expirada", "Bearer expirado", "SESSION_EXPIRED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildTestApp(auth.RoleAdmin)
			resp := doRequest(t, app, tc.header)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.code)
		})
	}
}

func TestAuthMiddleware_CargaIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testAuthn), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"username":   apphttp.GetUsername(c),
			"role":       apphttp.GetRole(c),
			"session_id": apphttp.GetSessionID(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "bearer tok-tecnico")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID    int64  `json:"user_id"`
		Username  string `json:"username"`
		Role      string `json:"role"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2), body.UserID)
	assert.Equal(t, "tecnico", body.Username)
	assert.Equal(t, auth.RoleTechnician, body.Role)
	assert.Equal(t, "s-2", body.SessionID)
}
