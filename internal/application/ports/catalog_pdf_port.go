package ports

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// CatalogDocument datos necesarios para imprimir el catálogo de un negocio.
type CatalogDocument struct {
	Business *entity.Business
	Products []*entity.Product
	ShareURL string // enlace público del catálogo, se imprime como QR
}

// CatalogPDFGenerator genera el catálogo compartible en PDF.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, doc CatalogDocument) ([]byte, error)
}
