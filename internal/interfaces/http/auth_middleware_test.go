package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testSubject   = "operador-1"
	testIssuer    = "tienda-api-test"
)

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, role, testIssuer, 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuthMiddleware_SinSecretNoRestringe(t *testing.T) {
	app := newTestApp(t, "")
	resp := do(t, app, http.MethodPost, "/categorias/", map[string]any{"nombre": "Abierta"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAuthMiddleware_EscriturasProtegidas(t *testing.T) {
	app := newTestApp(t, testJWTSecret)

	resp := do(t, app, http.MethodPost, "/categorias/", map[string]any{"nombre": "Bebidas"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/categorias/", map[string]any{"nombre": "Bebidas"}, "Authorization", "Bearer token.invalido.aqui")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/categorias/", map[string]any{"nombre": "Bebidas"}, "Authorization", "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/categorias/", map[string]any{"nombre": "Bebidas"}, "Authorization", bearer(t, "vendedor"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodPost, "/categorias/", map[string]any{"nombre": "Bebidas"}, "Authorization", bearer(t, apphttp.RoleOperador))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Las lecturas siguen públicas.
	resp = do(t, app, http.MethodGet, "/categorias/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_TokenSinRol(t *testing.T) {
	app := newTestApp(t, testJWTSecret)
	tok, err := pkgjwt.Generate(testJWTSecret, testSubject, "", testIssuer, 60)
	require.NoError(t, err)

	resp := do(t, app, http.MethodPost, "/categorias/", map[string]any{"nombre": "Bebidas"}, "Authorization", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"subject": apphttp.GetSubject(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", bearer(t, apphttp.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSubject, body["subject"])
	assert.Equal(t, apphttp.RoleAdmin, body["role"])
}
