// Package storage implementa ports.ObjectStorage sobre gocloud.dev/blob.
// El bucket se elige por URL: file:///ruta (disco local) o mem:// (pruebas).
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registra file://
	_ "gocloud.dev/blob/memblob"  // registra mem://
	"gocloud.dev/gcerrors"

	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
)

var _ ports.ObjectStorage = (*BlobStorage)(nil)

// BlobStorage guarda imágenes en un bucket y las expone bajo publicBaseURL.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Open abre el bucket indicado por bucketURL.
func Open(ctx context.Context, bucketURL, publicBaseURL string) (*BlobStorage, error) {
	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("storage: abrir bucket %q: %w", bucketURL, err)
	}
	return New(b, publicBaseURL), nil
}

// New envuelve un bucket ya abierto.
func New(bucket *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{bucket: bucket, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Put escribe el archivo. Si la escritura o el cierre fallan el objeto no queda publicado.
func (s *BlobStorage) Put(ctx context.Context, key string, file ports.Upload) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: file.ContentType})
	if err != nil {
		return fmt.Errorf("storage: abrir writer %s: %w", key, err)
	}
	if _, err := io.Copy(w, file.Body); err != nil {
		_ = w.Close()
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("storage: cerrar %s: %w", key, err)
	}
	return nil
}

// PublicURL devuelve la URL pública de key.
func (s *BlobStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}

// Object objeto leído del bucket para servirlo por HTTP.
type Object struct {
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// Get abre key para lectura. Retorna domain.ErrNotFound si no existe.
func (s *BlobStorage) Get(ctx context.Context, key string) (*Object, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("storage: leer %s: %w", key, err)
	}
	return &Object{ContentType: r.ContentType(), Size: r.Size(), Body: r}, nil
}

// Close libera el bucket.
func (s *BlobStorage) Close() error {
	return s.bucket.Close()
}
