package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
)

// DashboardHandler expone el flujo sesión → perfil → rol → negocio → dashboard.
type DashboardHandler struct {
	flow *onboarding.FlowUseCase
}

// NewDashboardHandler construye el handler del flujo.
func NewDashboardHandler(flow *onboarding.FlowUseCase) *DashboardHandler {
	return &DashboardHandler{flow: flow}
}

// Get godoc
// @Summary      Resolver el dashboard
// @Description  step: awaiting_role (mostrar selector), redirect (navegar), business_required (CTA crear negocio) o dashboard (KPIs).
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FlowResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}
	out, err := h.flow.Resolve(c.UserContext(), identity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out.Response())
}

// SelectRole godoc
// @Summary      Elegir rol
// @Description  Crea o actualiza el perfil con el rol elegido. Repetir la elección no duplica el perfil.
// @Tags         dashboard
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SelectRoleRequest  true  "cliente | emprendedor"
// @Success      200   {object}  dto.FlowResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/profile/role [put]
func (h *DashboardHandler) SelectRole(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}
	var in dto.SelectRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// el rol lo valida el caso de uso (INVALID_ROLE)
	out, err := h.flow.SelectRole(c.UserContext(), identity, in.Role)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out.Response())
}
