package http

import (
	"context"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/storage"
)

type imageSource interface {
	Get(ctx context.Context, key string) (*storage.Object, error)
}

// ImageHandler sirve logos y fotos de productos desde el bucket.
type ImageHandler struct {
	images imageSource
}

func NewImageHandler(images imageSource) *ImageHandler {
	return &ImageHandler{images: images}
}

// Get godoc
// @Summary      Obtener imagen
// @Tags         images
// @Produce      image/jpeg
// @Produce      image/png
// @Param        key  path  string  true  "carpeta/archivo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /imagenes/{key} [get]
func (h *ImageHandler) Get(c *fiber.Ctx) error {
	key := c.Params("*")
	if key == "" || strings.Contains(key, "..") {
		return notFound(c, "imagen no encontrada")
	}
	obj, err := h.images.Get(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}
	// se lee completo: el reader depende del contexto de la petición, que vence al retornar
	defer obj.Body.Close()
	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return respondError(c, err)
	}
	if obj.ContentType != "" {
		c.Set(fiber.HeaderContentType, obj.ContentType)
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}
