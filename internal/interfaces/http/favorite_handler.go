package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
)

// FavoriteHandler negocios favoritos del usuario.
type FavoriteHandler struct {
	uc *usecase.FavoriteUseCase
}

func NewFavoriteHandler(uc *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

// List godoc
// @Summary      Mis favoritos
// @Tags         favorites
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FavoriteResponse
// @Router       /api/favoritos [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Marcar favorito
// @Tags         favorites
// @Security     Bearer
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/favoritos/{businessID} [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	businessID, ok, err := idParam(c, "businessID", "negocio no encontrado")
	if !ok {
		return err
	}
	if err := h.uc.Add(c.UserContext(), GetUserID(c), businessID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Remove godoc
// @Summary      Quitar favorito
// @Tags         favorites
// @Security     Bearer
// @Param        businessID  path  string  true  "ID del negocio"
// @Success      204
// @Router       /api/favoritos/{businessID} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	businessID, ok, err := idParam(c, "businessID", "negocio no encontrado")
	if !ok {
		return err
	}
	if err := h.uc.Remove(c.UserContext(), GetUserID(c), businessID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
