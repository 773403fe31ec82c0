package repository

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// ListByBusiness ordena por fecha de creación descendente. limit <= 0 devuelve todos.
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error)
	CountByBusiness(ctx context.Context, businessID string) (int, error)
}
