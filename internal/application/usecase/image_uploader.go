package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
)

// Carpetas del bucket de imágenes.
const (
	FolderLogos     = "logos"
	FolderProductos = "productos"
)

var allowedImageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ImageUploader sube imágenes al almacenamiento de objetos y devuelve su URL pública.
type ImageUploader struct {
	storage  ports.ObjectStorage
	maxBytes int64
}

// NewImageUploader construye el uploader. maxBytes <= 0 desactiva el límite.
func NewImageUploader(storage ports.ObjectStorage, maxBytes int64) *ImageUploader {
	return &ImageUploader{storage: storage, maxBytes: maxBytes}
}

// Store guarda file bajo folder/<uuid><ext>. Retorna ErrInvalidInput si no es una imagen
// admitida y ErrUploadFailed si el almacenamiento falla; en ambos casos no hay URL.
func (u *ImageUploader) Store(ctx context.Context, folder string, file ports.Upload) (string, error) {
	ext, err := u.extension(file)
	if err != nil {
		return "", err
	}
	key := path.Join(folder, uuid.New().String()+ext)
	if err := u.storage.Put(ctx, key, file); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return u.storage.PublicURL(key), nil
}

func (u *ImageUploader) extension(file ports.Upload) (string, error) {
	if file.Body == nil {
		return "", domain.ErrInvalidInput
	}
	if u.maxBytes > 0 && file.Size > u.maxBytes {
		return "", fmt.Errorf("%w: imagen supera %d bytes", domain.ErrInvalidInput, u.maxBytes)
	}
	ct := strings.ToLower(strings.TrimSpace(strings.Split(file.ContentType, ";")[0]))
	if ext, ok := allowedImageExt[ct]; ok {
		return ext, nil
	}
	// Algunos navegadores envían application/octet-stream: se decide por la extensión.
	ext := strings.ToLower(path.Ext(file.Filename))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	for _, e := range allowedImageExt {
		if e == ext {
			return ext, nil
		}
	}
	return "", fmt.Errorf("%w: formato de imagen no admitido", domain.ErrInvalidInput)
}
