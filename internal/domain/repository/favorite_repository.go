package repository

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// FavoriteRepository define el puerto de persistencia para Favorite.
type FavoriteRepository interface {
	// Add es idempotente: marcar dos veces deja un solo favorito.
	Add(ctx context.Context, fav *entity.Favorite) error
	Remove(ctx context.Context, userID, businessID string) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)
}
