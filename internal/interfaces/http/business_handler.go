package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/onboarding"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
)

// BusinessHandler alta y edición del negocio propio (emprendedor).
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Create godoc
// @Summary      Crear mi negocio
// @Description  JSON o multipart/form-data con archivo opcional "logo". Un segundo envío responde 409 BUSINESS_EXISTS.
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        body  body      dto.CreateBusinessRequest  true   "name, description, whatsapp"
// @Param        logo  formData  file                       false  "logo (jpeg, png, webp, gif)"
// @Success      201   {object}  dto.BusinessCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dashboard/business [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}
	var in dto.CreateBusinessRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	logo, closeLogo, err := formUpload(c, "logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo inválido"})
	}
	defer closeLogo()

	out, err := h.uc.Create(c.UserContext(), identity, in, logo)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMine godoc
// @Summary      Obtener mi negocio
// @Description  Sin negocio responde state=empty con el CTA de alta.
// @Tags         business
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessResponse
// @Router       /api/dashboard/business [get]
func (h *BusinessHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.JSON(dto.FlowResponse{
			State: dto.ScreenEmpty,
			Step:  string(onboarding.StepBusinessRequired),
			CTA:   onboarding.PathBusinessNew,
		})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar mi negocio
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        body  body      dto.UpdateBusinessRequest  true   "campos a modificar"
// @Param        logo  formData  file                       false  "nuevo logo"
// @Success      200   {object}  dto.BusinessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dashboard/business [put]
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	logo, closeLogo, err := formUpload(c, "logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "archivo inválido"})
	}
	defer closeLogo()

	out, err := h.uc.Update(c.UserContext(), GetUserID(c), in, logo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
