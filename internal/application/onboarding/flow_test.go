package onboarding_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/application/analytics"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/memory"
)

func newFlow(store *memory.Store) *onboarding.FlowUseCase {
	dash := analytics.NewDashboardUseCase(store.Products(), store.Reviews())
	return onboarding.NewFlowUseCase(store.Profiles(), store.Businesses(), dash)
}

func identity(email string) entity.Identity {
	return entity.Identity{ID: uuid.New().String(), Email: email}
}

// failingProfiles simula un almacén que rechaza la escritura del rol.
type failingProfiles struct {
	*memory.ProfileRepo
}

func (failingProfiles) UpsertRole(context.Context, string, string, entity.Role) (*entity.Profile, error) {
	return nil, domain.ErrStoreUnavailable
}

func TestResolve_SinPerfil_EsperaSeleccionDeRol(t *testing.T) {
	store := memory.NewStore()
	flow := newFlow(store)

	for i := 0; i < 5; i++ {
		out, err := flow.Resolve(context.Background(), identity("nuevo@example.com"))
		require.NoError(t, err)
		assert.Equal(t, onboarding.StepAwaitingRole, out.Step)
		assert.Empty(t, out.Redirect, "sin perfil nunca se pasa al enrutador de rol")
	}
	assert.Zero(t, store.CountProfiles(), "leer el perfil no lo crea")
}

func TestResolve_PerfilSinRol_EsperaSeleccion(t *testing.T) {
	store := memory.NewStore()
	id := identity("sinrol@example.com")
	_, err := store.Profiles().UpsertRole(context.Background(), id.ID, id.Email, entity.RoleUnset)
	require.NoError(t, err)

	out, err := newFlow(store).Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepAwaitingRole, out.Step)

	resp := out.Response()
	assert.Equal(t, dto.ScreenEmpty, resp.State)
	require.Len(t, resp.RoleOptions, 2)
	assert.Equal(t, "cliente", resp.RoleOptions[0].Role)
	assert.Equal(t, "emprendedor", resp.RoleOptions[1].Role)
}

func TestSelectRole_Idempotente(t *testing.T) {
	store := memory.NewStore()
	flow := newFlow(store)
	id := identity("ana@example.com")

	for i := 0; i < 2; i++ {
		_, err := flow.SelectRole(context.Background(), id, "emprendedor")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, store.CountProfiles())
	p, err := store.Profiles().GetByID(context.Background(), id.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.RoleEmprendedor, p.Role)
	assert.Equal(t, id.Email, p.Email)
}

func TestSelectRole_Cliente_RedirigeAlCatalogo(t *testing.T) {
	store := memory.NewStore()
	flow := newFlow(store)
	id := identity("cliente@example.com")

	out, err := flow.SelectRole(context.Background(), id, "cliente")
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepRedirect, out.Step)
	assert.Equal(t, onboarding.PathCatalog, out.Redirect)

	// La siguiente navegación tampoco llega al panel.
	next, err := flow.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, onboarding.PathCatalog, next.Redirect)
	assert.Nil(t, next.Summary)
}

func TestSelectRole_Emprendedor_SinNegocio_PideCrearlo(t *testing.T) {
	store := memory.NewStore()
	flow := newFlow(store)
	id := identity("emp@example.com")

	out, err := flow.SelectRole(context.Background(), id, "emprendedor")
	require.NoError(t, err)
	assert.Equal(t, onboarding.PathDashboard, out.Redirect)

	next, err := flow.Resolve(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepBusinessRequired, next.Step)
	assert.Nil(t, next.Business)
	assert.Nil(t, next.Summary, "sin negocio no se muestra contenido del panel")
	assert.Equal(t, onboarding.PathBusinessNew, next.Response().CTA)
}

func TestSelectRole_RolInvalido(t *testing.T) {
	store := memory.NewStore()
	_, err := newFlow(store).SelectRole(context.Background(), identity("x@example.com"), "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Zero(t, store.CountProfiles())
}

func TestSelectRole_FallaEscritura_NoRedirige(t *testing.T) {
	store := memory.NewStore()
	dash := analytics.NewDashboardUseCase(store.Products(), store.Reviews())
	flow := onboarding.NewFlowUseCase(failingProfiles{store.Profiles()}, store.Businesses(), dash)

	out, err := flow.SelectRole(context.Background(), identity("x@example.com"), "cliente")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Nil(t, out, "sin escritura confirmada no hay redirección")
}

func TestResolve_ContextoCancelado_EsError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := newFlow(memory.NewStore()).Resolve(ctx, identity("x@example.com"))
	assert.Error(t, err, "un fallo de transporte no se confunde con 'sin perfil'")
	assert.Nil(t, out)
}

// Escenario u2: un cliente que visita el panel va al catálogo.
func TestResolve_ClienteVisitaPanel_RedirigeAlCatalogo(t *testing.T) {
	store := memory.NewStore()
	u2 := identity("u2@example.com")
	_, err := store.Profiles().UpsertRole(context.Background(), u2.ID, u2.Email, entity.RoleCliente)
	require.NoError(t, err)

	out, err := newFlow(store).Resolve(context.Background(), u2)
	require.NoError(t, err)

	resp := out.Response()
	assert.Equal(t, "redirect", resp.Step)
	assert.Equal(t, "/catalogo", resp.Redirect)
	assert.Nil(t, resp.Business)
	assert.Nil(t, resp.Summary)
	assert.Empty(t, resp.CTA)
}

func TestResolve_EmprendedorConNegocio_MuestraPanel(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	id := identity("tienda@example.com")
	_, err := store.Profiles().UpsertRole(ctx, id.ID, id.Email, entity.RoleEmprendedor)
	require.NoError(t, err)

	now := time.Now()
	biz := &entity.Business{ID: uuid.New().String(), OwnerID: id.ID, Name: "Tienda A", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Businesses().Create(ctx, biz))
	prod := &entity.Product{ID: uuid.New().String(), BusinessID: biz.ID, Name: "Pan", Price: decimal.NewFromInt(3), CreatedAt: now}
	require.NoError(t, store.Products().Create(ctx, prod))

	cliente := identity("c@example.com")
	for i, r := range []int{5, 4, 3} {
		rv := &entity.Review{ID: uuid.New().String(), AuthorID: cliente.ID, BusinessID: biz.ID, Rating: r, CreatedAt: now.Add(time.Duration(i) * time.Second)}
		if i == 2 {
			// reseña del producto, asociada al negocio vía product_id
			rv.BusinessID = ""
			rv.ProductID = prod.ID
		}
		require.NoError(t, store.Reviews().Create(ctx, rv))
	}

	out, err := newFlow(store).Resolve(ctx, id)
	require.NoError(t, err)
	require.Equal(t, onboarding.StepDashboard, out.Step)
	require.NotNil(t, out.Summary)
	assert.Equal(t, 1, out.Summary.TotalProducts)
	assert.Equal(t, 3, out.Summary.TotalReviews)
	assert.Equal(t, "4.0", out.Summary.AverageRating.StringFixed(1))

	resp := out.Response()
	assert.Equal(t, dto.ScreenReady, resp.State)
	require.NotNil(t, resp.Business)
	assert.Equal(t, "Tienda A", resp.Business.Name)
}

func TestResolve_FallaResumen_SePropaga(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	id := identity("t@example.com")
	_, err := store.Profiles().UpsertRole(ctx, id.ID, id.Email, entity.RoleEmprendedor)
	require.NoError(t, err)
	require.NoError(t, store.Businesses().Create(ctx, &entity.Business{ID: uuid.New().String(), OwnerID: id.ID, Name: "T"}))

	boom := errors.New("boom")
	flow := onboarding.NewFlowUseCase(store.Profiles(), store.Businesses(), summarizerFunc(func() error { return boom }))
	_, err = flow.Resolve(ctx, id)
	assert.ErrorIs(t, err, boom)
}

type summarizerFunc func() error

func (f summarizerFunc) Summary(context.Context, *entity.Business) (*dto.DashboardSummaryDTO, error) {
	return nil, f()
}
