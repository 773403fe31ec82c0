package repository

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// ReviewRepository define el puerto de persistencia para Review.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	// ListByBusiness incluye reseñas directas del negocio y las de sus productos, más recientes primero.
	ListByBusiness(ctx context.Context, businessID string) ([]*entity.Review, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Review, error)
}
