package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/application/auth"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	apphttp "github.com/jhoicas/MercadoLocal-api/internal/interfaces/http"
)

type stubResolver struct {
	principal *auth.Principal
	err       error
}

func (s stubResolver) Resolve(context.Context, string) (*auth.Principal, error) {
	return s.principal, s.err
}

// protectedApp ruta mínima detrás del middleware; responde el user_id de los locals.
func protectedApp(r stubResolver) *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(r), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c), "session_id": apphttp.GetSessionID(c)})
	})
	return app
}

func getProtected(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer x")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SesionVigente_CargaIdentidad(t *testing.T) {
	app := protectedApp(stubResolver{principal: &auth.Principal{
		Identity:  entity.Identity{ID: "u-1", Email: "ana@example.com"},
		SessionID: "s-1",
	}})

	resp := getProtected(t, app)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "u-1", body["user_id"])
	assert.Equal(t, "s-1", body["session_id"])
}

func TestAuthMiddleware_SinSesion_401ConRedirectAlLogin(t *testing.T) {
	resp := getProtected(t, protectedApp(stubResolver{}))

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "UNAUTHENTICATED", body.Code)
	assert.Equal(t, "/auth/login", body.Redirect)
	assert.Equal(t, dto.ScreenError, body.State)
}

// Un fallo del almacén de sesiones no se confunde con "sin sesión": no manda al login.
func TestAuthMiddleware_AlmacenCaido_503ConReintento(t *testing.T) {
	resp := getProtected(t, protectedApp(stubResolver{err: errors.Join(domain.ErrAuthUnavailable, errors.New("dial tcp: refused"))}))

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "AUTH_UNAVAILABLE", body.Code)
	assert.True(t, body.Retry)
	assert.Empty(t, body.Redirect)
}

func TestAuthMiddleware_Deadline_504(t *testing.T) {
	resp := getProtected(t, protectedApp(stubResolver{err: context.DeadlineExceeded}))

	assert.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "TIMEOUT", body.Code)
	assert.True(t, body.Retry)
}

func TestAuthMiddleware_TokenInvalido_401(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/dashboard", "Bearer no-es-un-jwt", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_RevocaLaSesion(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "ana@example.com")

	resp := s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/api/dashboard", token, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "el token de una sesión revocada ya no vale")
}
