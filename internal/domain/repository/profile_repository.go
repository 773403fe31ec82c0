package repository

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para Profile.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	// UpsertRole crea el perfil si no existe o sobrescribe el rol si existe. Idempotente.
	UpsertRole(ctx context.Context, id, email string, role entity.Role) (*entity.Profile, error)
	// UpdateContact actualiza nombre y teléfono; devuelve (nil, nil) si no hay perfil.
	UpdateContact(ctx context.Context, id, name, phone string) (*entity.Profile, error)
}
