package http_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos que, como la columna uuid de Postgres, fallan ante un id mal formado
// ──────────────────────────────────────────────────────────────────────────────

func uuidSyntaxErr(id string) error {
	return fmt.Errorf("invalid input syntax for type uuid: %q", id)
}

type uuidBusinessRepo struct{ repository.BusinessRepository }

func (r uuidBusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, uuidSyntaxErr(id)
	}
	return r.BusinessRepository.GetByID(ctx, id)
}

type uuidProductRepo struct{ repository.ProductRepository }

func (r uuidProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, uuidSyntaxErr(id)
	}
	return r.ProductRepository.GetByID(ctx, id)
}

// withUUIDColumns rearma la app sobre el mismo almacén con repos de ids tipados.
func (s *testServer) withUUIDColumns() *fiber.App {
	deps := s.deps
	businesses := uuidBusinessRepo{s.store.Businesses()}
	products := uuidProductRepo{s.store.Products()}
	deps.ProductUC = usecase.NewProductUseCase(products, deps.BusinessUC, nil)
	deps.ReviewUC = usecase.NewReviewUseCase(s.store.Reviews(), businesses, products, deps.BusinessUC)
	deps.FavoriteUC = usecase.NewFavoriteUseCase(s.store.Favorites(), businesses)
	deps.CatalogUC = usecase.NewCatalogUseCase(businesses, products, fakePDF{}, "http://localhost")
	return buildApp(deps)
}

func TestRutas_IdMalFormado_404SinLlegarAlRepositorio(t *testing.T) {
	s := newTestServer(t)
	sellerToken, _ := seedBusiness(t, s, "dueno@example.com", "Huerta")
	clientToken := s.login(t, "cli@example.com")
	selectRole(t, s, clientToken, "cliente")
	app := s.withUUIDColumns()

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
	}{
		{"detalle del catálogo", http.MethodGet, "/api/catalogo/abc", "", nil},
		{"pdf del catálogo", http.MethodGet, "/api/catalogo/abc/pdf", "", nil},
		{"reseña", http.MethodPost, "/api/catalogo/abc/reviews", clientToken, dto.CreateReviewRequest{Rating: 5}},
		{"agregar favorito", http.MethodPost, "/api/favoritos/abc", clientToken, nil},
		{"quitar favorito", http.MethodDelete, "/api/favoritos/abc", clientToken, nil},
		{"ver producto", http.MethodGet, "/api/dashboard/products/abc", sellerToken, nil},
		{"editar producto", http.MethodPut, "/api/dashboard/products/abc", sellerToken, dto.UpdateProductRequest{}},
		{"borrar producto", http.MethodDelete, "/api/dashboard/products/abc", sellerToken, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doOn(t, app, tc.method, tc.path, tc.token, tc.body)
			require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
			var out dto.ErrorResponse
			decode(t, resp, &out)
			assert.Equal(t, "NOT_FOUND", out.Code)
			assert.Equal(t, dto.ScreenError, out.State)
		})
	}
}

func TestRutas_IdValidoInexistente_Sigue404(t *testing.T) {
	s := newTestServer(t)
	app := s.withUUIDColumns()

	resp := doOn(t, app, http.MethodGet, "/api/catalogo/"+uuid.NewString(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
