package ports

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

// BusinessTxRunner ejecuta fn en una transacción serializada por dueño: dos altas del
// mismo ownerID nunca se solapan. Si fn devuelve error se hace rollback.
type BusinessTxRunner interface {
	RunForOwner(ctx context.Context, ownerID string, fn func(
		profiles repository.ProfileRepository,
		businesses repository.BusinessRepository,
	) error) error
}
