package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
)

// CatalogHandler catálogo público de negocios.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Listar negocios
// @Description  q filtra por nombre o descripción sin distinguir mayúsculas ni tildes.
// @Tags         catalog
// @Produce      json
// @Param        q       query  string  false  "búsqueda"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.BusinessListResponse
// @Router       /api/catalogo [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	out, err := h.uc.List(c.UserContext(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de un negocio con sus productos
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "ID del negocio"
// @Success      200  {object}  dto.CatalogDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogo/{id} [get]
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok, err := idParam(c, "id", "negocio no encontrado")
	if !ok {
		return err
	}
	out, err := h.uc.Detail(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Catálogo en PDF
// @Description  Documento compartible con los productos del negocio y un QR al enlace del catálogo.
// @Tags         catalog
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del negocio"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalogo/{id}/pdf [get]
func (h *CatalogHandler) PDF(c *fiber.Ctx) error {
	id, ok, err := idParam(c, "id", "negocio no encontrado")
	if !ok {
		return err
	}
	pdfBytes, filename, err := h.uc.PDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(pdfBytes)
}
