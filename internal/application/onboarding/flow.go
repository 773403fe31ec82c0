// Package onboarding implementa el flujo que decide qué ve un usuario autenticado al entrar
// al panel: selección de rol, redirección al catálogo, creación de negocio o panel completo.
//
//	Sesión → Perfil → Rol → Negocio → Panel
//
// Cada etapa puede sacar al usuario del flujo; ninguna redirección ocurre antes de que la
// escritura que la motiva haya sido confirmada por el almacén.
package onboarding

import (
	"context"
	"fmt"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

// Rutas del frontend a las que el flujo redirige.
const (
	PathLogin       = "/auth/login"
	PathCatalog     = "/catalogo"
	PathDashboard   = "/dashboard"
	PathBusinessNew = "/dashboard/business/new"
	PathWelcome     = "/dashboard/welcome"
)

// Step etapa en la que queda el usuario.
type Step string

const (
	StepAwaitingRole     Step = "awaiting_role"
	StepRedirect         Step = "redirect"
	StepBusinessRequired Step = "business_required"
	StepDashboard        Step = "dashboard"
)

// Summarizer calcula los KPIs del panel. Lo implementa *analytics.DashboardUseCase.
type Summarizer interface {
	Summary(ctx context.Context, business *entity.Business) (*dto.DashboardSummaryDTO, error)
}

// Outcome resultado tipado del flujo.
type Outcome struct {
	Step     Step
	Redirect string
	Identity entity.Identity
	Profile  *entity.Profile
	Business *entity.Business
	Summary  *dto.DashboardSummaryDTO
}

// FlowUseCase orquesta Profile Gate, Role Router y Business Gate.
type FlowUseCase struct {
	profileRepo  repository.ProfileRepository
	businessRepo repository.BusinessRepository
	summarizer   Summarizer
}

// NewFlowUseCase construye el flujo.
func NewFlowUseCase(profileRepo repository.ProfileRepository, businessRepo repository.BusinessRepository, summarizer Summarizer) *FlowUseCase {
	return &FlowUseCase{profileRepo: profileRepo, businessRepo: businessRepo, summarizer: summarizer}
}

// Resolve evalúa las compuertas para la identidad ya autenticada.
// Un error devuelto es siempre de transporte/almacén; la ausencia de filas se expresa con Step.
func (uc *FlowUseCase) Resolve(ctx context.Context, identity entity.Identity) (*Outcome, error) {
	profile, err := uc.profileRepo.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("flujo: leer perfil: %w", err)
	}
	if !profile.HasRole() {
		return &Outcome{Step: StepAwaitingRole, Identity: identity, Profile: profile}, nil
	}
	if profile.Role == entity.RoleCliente {
		return &Outcome{Step: StepRedirect, Redirect: PathCatalog, Identity: identity, Profile: profile}, nil
	}
	return uc.businessGate(ctx, identity, profile)
}

// SelectRole persiste el rol (upsert idempotente) y solo después devuelve la redirección:
// cliente → catálogo, emprendedor → panel (que vuelve a pasar por Resolve).
// Si la escritura falla no hay Outcome: el usuario sigue en el selector con el error.
func (uc *FlowUseCase) SelectRole(ctx context.Context, identity entity.Identity, role string) (*Outcome, error) {
	r, ok := entity.ParseRole(role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	profile, err := uc.profileRepo.UpsertRole(ctx, identity.ID, identity.Email, r)
	if err != nil {
		return nil, fmt.Errorf("flujo: guardar rol: %w", err)
	}
	target := PathDashboard
	if r == entity.RoleCliente {
		target = PathCatalog
	}
	return &Outcome{Step: StepRedirect, Redirect: target, Identity: identity, Profile: profile}, nil
}

func (uc *FlowUseCase) businessGate(ctx context.Context, identity entity.Identity, profile *entity.Profile) (*Outcome, error) {
	business, err := uc.businessRepo.GetByOwner(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("flujo: leer negocio: %w", err)
	}
	if business == nil {
		return &Outcome{
			Step:     StepBusinessRequired,
			Redirect: PathBusinessNew,
			Identity: identity,
			Profile:  profile,
		}, nil
	}
	summary, err := uc.summarizer.Summary(ctx, business)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Step:     StepDashboard,
		Identity: identity,
		Profile:  profile,
		Business: business,
		Summary:  summary,
	}, nil
}

// roleOptions opciones del selector, en el orden en que se muestran.
var roleOptions = []dto.RoleOption{
	{Role: string(entity.RoleCliente), Label: "Soy Cliente", Description: "Quiero explorar productos y dejar reseñas"},
	{Role: string(entity.RoleEmprendedor), Label: "Soy Emprendedor", Description: "Quiero gestionar mi negocio y productos"},
}

// Response traduce el Outcome al contrato HTTP.
func (o *Outcome) Response() dto.FlowResponse {
	out := dto.FlowResponse{Step: string(o.Step), Email: o.Identity.Email}
	switch o.Step {
	case StepAwaitingRole:
		out.State = dto.ScreenEmpty
		out.RoleOptions = roleOptions
	case StepRedirect:
		out.State = dto.ScreenReady
		out.Redirect = o.Redirect
	case StepBusinessRequired:
		out.State = dto.ScreenEmpty
		out.CTA = o.Redirect
	case StepDashboard:
		out.State = dto.ScreenReady
		b := dto.ToBusinessResponse(o.Business)
		out.Business = &b
		out.Summary = o.Summary
	}
	return out
}
