package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/MercadoLocal-api/internal/application/analytics"
	"github.com/jhoicas/MercadoLocal-api/internal/application/auth"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/memory"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/MercadoLocal-api/internal/interfaces/http"
	"github.com/jhoicas/MercadoLocal-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "mercadolocal-test"
	testPassword  = "password123"
)

type fakePDF struct{}

func (fakePDF) GenerateCatalogPDF(_ context.Context, _ ports.CatalogDocument) ([]byte, error) {
	return []byte("%PDF-1.4 test"), nil
}

// testServer arma la app completa sobre el almacén en memoria y un bucket mem://.
type testServer struct {
	store *memory.Store
	deps  apphttp.RouterDeps
	app   *fiber.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.NewStore()
	blobs, err := storage.Open(context.Background(), "mem://", "http://localhost/imagenes")
	require.NoError(t, err)
	t.Cleanup(func() { _ = blobs.Close() })

	images := usecase.NewImageUploader(blobs, 1<<20)
	businesses := usecase.NewBusinessUseCase(store.Businesses(), store.Profiles(), store.TxRunner(), images, logger.Nop())
	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(store.Users(), store.Sessions(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer,
		}).WithHashCost(bcrypt.MinCost),
		Sessions:   auth.NewSessionResolver(store.Sessions(), testJWTSecret, logger.Nop()),
		Profiles:   store.Profiles(),
		FlowUC:     onboarding.NewFlowUseCase(store.Profiles(), store.Businesses(), analytics.NewDashboardUseCase(store.Products(), store.Reviews())),
		ProfileUC:  usecase.NewProfileUseCase(store.Profiles()),
		BusinessUC: businesses,
		ProductUC:  usecase.NewProductUseCase(store.Products(), businesses, images),
		ReviewUC:   usecase.NewReviewUseCase(store.Reviews(), store.Businesses(), store.Products(), businesses),
		FavoriteUC: usecase.NewFavoriteUseCase(store.Favorites(), store.Businesses()),
		CatalogUC:  usecase.NewCatalogUseCase(store.Businesses(), store.Products(), fakePDF{}, "http://localhost"),
		Images:     blobs,
		Log:        logger.Nop(),
	}
	return &testServer{store: store, deps: deps, app: buildApp(deps)}
}

func buildApp(deps apphttp.RouterDeps) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, deps)
	return app
}

// withTimeout devuelve otra app sobre el mismo almacén con el timeout indicado.
func (s *testServer) withTimeout(d time.Duration) *fiber.App {
	deps := s.deps
	deps.RequestTimeout = d
	return buildApp(deps)
}

// login registra al usuario y devuelve el header Authorization.
func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{Email: email, Password: testPassword})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: testPassword})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return "Bearer " + out.Token
}

func (s *testServer) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	return doOn(t, s.app, method, path, authHeader, body)
}

func doOn(t *testing.T, app *fiber.App, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
