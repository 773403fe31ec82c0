package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, email, COALESCE(role, ''), COALESCE(name, ''), COALESCE(phone, ''), created_at, updated_at`

// ProfileRepo tabla profiles (id = users.id).
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

// GetByID obtiene el perfil; (nil, nil) si aún no existe.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	p, err := scanProfile(r.q.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get profile", err)
	}
	return p, nil
}

// UpsertRole crea el perfil o sobrescribe email y rol. Nombre y teléfono se conservan.
func (r *ProfileRepo) UpsertRole(ctx context.Context, id, email string, role entity.Role) (*entity.Profile, error) {
	query := `
		INSERT INTO profiles (id, email, role, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $4)
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, role = EXCLUDED.role, updated_at = EXCLUDED.updated_at
		RETURNING ` + profileColumns
	p, err := scanProfile(r.q.QueryRow(ctx, query, id, email, string(role), time.Now()))
	if err != nil {
		return nil, wrapErr("upsert profile role", err)
	}
	return p, nil
}

// UpdateContact actualiza nombre y teléfono; (nil, nil) si no hay perfil.
func (r *ProfileRepo) UpdateContact(ctx context.Context, id, name, phone string) (*entity.Profile, error) {
	query := `
		UPDATE profiles SET name = $2, phone = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + profileColumns
	p, err := scanProfile(r.q.QueryRow(ctx, query, id, nullString(name), nullString(phone), time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("update profile contact", err)
	}
	return p, nil
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var p entity.Profile
	var role string
	if err := row.Scan(&p.ID, &p.Email, &role, &p.Name, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Role = entity.Role(role)
	return &p, nil
}
