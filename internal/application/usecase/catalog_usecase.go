package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

// CatalogUseCase catálogo público: listado de negocios, detalle y PDF compartible.
type CatalogUseCase struct {
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	generator    ports.CatalogPDFGenerator
	publicURL    string
}

// NewCatalogUseCase construye el caso de uso. publicURL es la base del frontend (sin barra final).
func NewCatalogUseCase(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	generator ports.CatalogPDFGenerator,
	publicURL string,
) *CatalogUseCase {
	return &CatalogUseCase{businessRepo: businessRepo, productRepo: productRepo, generator: generator, publicURL: publicURL}
}

// List lista negocios. Con q filtra por nombre o descripción sin distinguir mayúsculas ni tildes.
func (uc *CatalogUseCase) List(ctx context.Context, q string, limit, offset int) (*dto.BusinessListResponse, error) {
	q = strings.TrimSpace(q)
	var (
		list []*entity.Business
		err  error
	)
	if q == "" {
		list, err = uc.businessRepo.List(ctx, limit, offset)
	} else {
		list, err = uc.businessRepo.Search(ctx, q, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		items = append(items, dto.ToBusinessResponse(b))
	}
	return &dto.BusinessListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Detail negocio público con todos sus productos.
func (uc *CatalogUseCase) Detail(ctx context.Context, businessID string) (*dto.CatalogDetailResponse, error) {
	business, products, err := uc.load(ctx, businessID)
	if err != nil {
		return nil, err
	}
	return &dto.CatalogDetailResponse{
		Business: dto.ToBusinessResponse(business),
		Products: toProductResponses(products),
		ShareURL: uc.ShareURL(business.ID),
	}, nil
}

// PDF genera el catálogo imprimible del negocio.
func (uc *CatalogUseCase) PDF(ctx context.Context, businessID string) (pdfBytes []byte, filename string, err error) {
	business, products, err := uc.load(ctx, businessID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateCatalogPDF(ctx, ports.CatalogDocument{
		Business: business,
		Products: products,
		ShareURL: uc.ShareURL(business.ID),
	})
	if err != nil {
		return nil, "", fmt.Errorf("catálogo pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("catalogo_%s.pdf", business.ID), nil
}

// ShareURL enlace público al catálogo del negocio.
func (uc *CatalogUseCase) ShareURL(businessID string) string {
	return uc.publicURL + "/catalogo/" + businessID
}

func (uc *CatalogUseCase) load(ctx context.Context, businessID string) (*entity.Business, []*entity.Product, error) {
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, nil, err
	}
	if business == nil {
		return nil, nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListByBusiness(ctx, business.ID, 0, 0)
	if err != nil {
		return nil, nil, err
	}
	return business, products, nil
}
