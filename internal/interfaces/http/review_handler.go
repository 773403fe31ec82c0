package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
)

// ReviewHandler reseñas de negocios y productos.
type ReviewHandler struct {
	uc *usecase.ReviewUseCase
}

func NewReviewHandler(uc *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

// Create godoc
// @Summary      Reseñar un negocio o uno de sus productos
// @Tags         reviews
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del negocio"
// @Param        body  body  dto.CreateReviewRequest  true  "rating 1..5, comment, product_id opcional"
// @Success      201   {object}  dto.ReviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalogo/{id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return respondError(c, domain.ErrUnauthenticated)
	}
	businessID, ok, err := idParam(c, "id", "negocio no encontrado")
	if !ok {
		return err
	}
	var in dto.CreateReviewRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), identity, businessID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListForOwner godoc
// @Summary      Reseñas de mi negocio
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessReviewsResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard/reviews [get]
func (h *ReviewHandler) ListForOwner(c *fiber.Ctx) error {
	out, err := h.uc.ListForOwner(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Mis reseñas
// @Tags         reviews
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReviewResponse
// @Router       /api/mis-resenas [get]
func (h *ReviewHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
