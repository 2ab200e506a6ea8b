package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/seu-usuario/farmacia-api/internal/interfaces/http"
	pkgjwt "github.com/seu-usuario/farmacia-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testCustomerID = "00000000-0000-0000-0000-000000000001"
	testEmail      = "ana@example.com"
	testName       = "Ana Souza"
	testIssuer     = "farmacia-api-test"
	testExpHours   = 1
)

// buildTestApp monta uma aplicação Fiber mínima com uma rota protegida e
// uma com auth opcional; ambas devolvem a identidade vista pelo handler.
func buildTestApp() *fiber.App {
	app := fiber.New()
	identity := func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"id":    apphttp.GetCustomerID(c),
			"email": apphttp.GetCustomerEmail(c),
		})
	}
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), identity)
	app.Get("/optional", apphttp.OptionalAuth(testJWTSecret), identity)
	return app
}

func testToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testCustomerID, testEmail, testName, testIssuer, testExpHours)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido passa e a identidade chega no handler via Locals.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", testToken(t))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Sem header Authorization a rota protegida responde 401.
func TestAuthMiddleware_SemToken(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Header fora do formato "Bearer <token>" responde 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Basic abc123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Token assinado com outro segredo responde 401, igual ao token ausente.
func TestAuthMiddleware_SegredoErrado(t *testing.T) {
	tok, err := pkgjwt.Generate("outro-segredo", testCustomerID, testEmail, testName, testIssuer, testExpHours)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Token expirado responde 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testCustomerID, testEmail, testName, testIssuer, -1)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// OptionalAuth
// ──────────────────────────────────────────────────────────────────────────────

// Sem token a rota opcional segue anônima, sem bloquear.
func TestOptionalAuth_SemTokenPassaAnonimo(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/optional", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Token inválido na rota opcional também não bloqueia.
func TestOptionalAuth_TokenInvalidoNaoBloqueia(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/optional", "Bearer lixo")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Token válido na rota opcional preenche a identidade.
func TestOptionalAuth_TokenValidoPreencheLocals(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/optional", testToken(t))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
