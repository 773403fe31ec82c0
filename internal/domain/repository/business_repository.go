package repository

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// BusinessRepository define el puerto de persistencia para Business.
// Create devuelve domain.ErrBusinessExists si el dueño ya tiene negocio.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	GetByID(ctx context.Context, id string) (*entity.Business, error)
	GetByOwner(ctx context.Context, ownerID string) (*entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
	List(ctx context.Context, limit, offset int) ([]*entity.Business, error)
	// Search filtra por nombre o descripción sin distinguir mayúsculas ni tildes,
	// con el mismo orden y paginado que List.
	Search(ctx context.Context, q string, limit, offset int) ([]*entity.Business, error)
}
