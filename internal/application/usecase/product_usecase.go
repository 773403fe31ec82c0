package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos del negocio propio.
type ProductUseCase struct {
	repo       repository.ProductRepository
	businesses *BusinessUseCase
	images     *ImageUploader
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, businesses *BusinessUseCase, images *ImageUploader) *ProductUseCase {
	return &ProductUseCase{repo: repo, businesses: businesses, images: images}
}

// Create crea un producto en el negocio del usuario. Precio y stock no negativos.
func (uc *ProductUseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest, image *ports.Upload) (*dto.ProductResponse, error) {
	business, err := uc.businesses.RequireOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() || (in.Stock != nil && *in.Stock < 0) {
		return nil, domain.ErrInvalidInput
	}
	var imageURL string
	if image != nil {
		if imageURL, err = uc.images.Store(ctx, FolderProductos, *image); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		BusinessID:  business.ID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto del negocio propio; (nil, nil) si no existe o es de otro negocio.
func (uc *ProductUseCase) GetByID(ctx context.Context, ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.own(ctx, ownerID, id)
	if err != nil || product == nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto propio.
func (uc *ProductUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.own(ctx, ownerID, id)
	if err != nil || product == nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Stock = in.Stock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto propio. Retorna ErrNotFound si no existe en el negocio.
func (uc *ProductUseCase) Delete(ctx context.Context, ownerID, id string) error {
	product, err := uc.own(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, product.ID)
}

// List lista los productos del negocio propio con paginación.
func (uc *ProductUseCase) List(ctx context.Context, ownerID string, limit, offset int) (*dto.ProductListResponse, error) {
	business, err := uc.businesses.RequireOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByBusiness(ctx, business.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: toProductResponses(list),
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func (uc *ProductUseCase) own(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	business, err := uc.businesses.RequireOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != business.ID {
		return nil, nil
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		BusinessID:  p.BusinessID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}
