package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
)

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

// formUpload abre el archivo del campo indicado si la petición es multipart.
// Devuelve nil si no se envió archivo; el llamador debe invocar close.
func formUpload(c *fiber.Ctx, field string) (upload *ports.Upload, closeFn func(), err error) {
	closeFn = func() {}
	if !isMultipart(c) {
		return nil, closeFn, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, closeFn, err
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, closeFn, nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, closeFn, err
	}
	return &ports.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}
