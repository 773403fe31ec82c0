package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/catalog"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

var _ repository.BusinessRepository = (*BusinessRepo)(nil)

const businessColumns = `id, owner_id, name, description, whatsapp, logo_url, created_at, updated_at`

// BusinessRepo tabla businesses. owner_id tiene índice único (businesses_owner_id_key).
type BusinessRepo struct {
	q Querier
}

// NewBusinessRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBusinessRepository(q Querier) *BusinessRepo {
	return &BusinessRepo{q: q}
}

// Create inserta el negocio. Un segundo negocio del mismo dueño viola el índice único
// y se traduce a domain.ErrBusinessExists.
func (r *BusinessRepo) Create(ctx context.Context, b *entity.Business) error {
	query := `
		INSERT INTO businesses (id, owner_id, name, description, whatsapp, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.OwnerID, b.Name, nullString(b.Description), nullString(b.WhatsApp), nullString(b.LogoURL),
		b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrBusinessExists
		}
		return wrapErr("insert business", err)
	}
	return nil
}

// GetByID obtiene un negocio por ID.
func (r *BusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	return r.findOne(ctx, "get business by id", `SELECT `+businessColumns+` FROM businesses WHERE id = $1`, id)
}

// GetByOwner obtiene el negocio del dueño; (nil, nil) si no tiene.
func (r *BusinessRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Business, error) {
	return r.findOne(ctx, "get business by owner", `SELECT `+businessColumns+` FROM businesses WHERE owner_id = $1`, ownerID)
}

// Update actualiza los campos editables.
func (r *BusinessRepo) Update(ctx context.Context, b *entity.Business) error {
	query := `
		UPDATE businesses SET name = $2, description = $3, whatsapp = $4, logo_url = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		b.ID, b.Name, nullString(b.Description), nullString(b.WhatsApp), nullString(b.LogoURL), b.UpdatedAt,
	)
	if err != nil {
		return wrapErr("update business", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista negocios del catálogo, más recientes primero.
func (r *BusinessRepo) List(ctx context.Context, limit, offset int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr("list businesses", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, wrapErr("scan business", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Search filtra en SQL con unaccent(lower(...)) LIKE, el equivalente de catalog.Fold.
// limit <= 0 devuelve todas las coincidencias.
func (r *BusinessRepo) Search(ctx context.Context, q string, limit, offset int) ([]*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses
		WHERE unaccent(lower(name)) LIKE $1 ESCAPE '\'
		   OR unaccent(lower(coalesce(description, ''))) LIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.q.Query(ctx, query, containsPattern(catalog.Fold(q)), lim, offset)
	if err != nil {
		return nil, wrapErr("search businesses", err)
	}
	defer rows.Close()
	var list []*entity.Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, wrapErr("scan business", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *BusinessRepo) findOne(ctx context.Context, op, query, arg string) (*entity.Business, error) {
	b, err := scanBusiness(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		// un id que no es UUID no puede existir: mismo resultado que el almacén en memoria
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return b, nil
}

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var b entity.Business
	var description, whatsapp, logoURL *string
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &description, &whatsapp, &logoURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Description = stringOrEmpty(description)
	b.WhatsApp = stringOrEmpty(whatsapp)
	b.LogoURL = stringOrEmpty(logoURL)
	return &b, nil
}
