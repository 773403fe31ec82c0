package ports

import (
	"context"
	"io"
)

// Upload archivo recibido del cliente (logo de negocio o imagen de producto).
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStorage puerto hacia el almacenamiento de objetos (imágenes).
// La implementación vive en infrastructure/storage.
type ObjectStorage interface {
	// Put guarda el contenido bajo key. Un error significa que no hay URL válida que persistir.
	Put(ctx context.Context, key string, file Upload) error
	// PublicURL devuelve la URL pública con la que se sirve key.
	PublicURL(key string) string
}
