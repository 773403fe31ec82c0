package postgres

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo tabla favorites, PK (user_id, business_id).
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador.
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// Add inserta el favorito; si ya existe no hace nada.
func (r *FavoriteRepo) Add(ctx context.Context, f *entity.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, business_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, business_id) DO NOTHING`
	if _, err := r.q.Exec(ctx, query, f.UserID, f.BusinessID, f.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return wrapErr("insert favorite", err)
	}
	return nil
}

// Remove borra el favorito (no es error si no existía).
func (r *FavoriteRepo) Remove(ctx context.Context, userID, businessID string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND business_id = $2`, userID, businessID); err != nil {
		return wrapErr("delete favorite", err)
	}
	return nil
}

// ListByUser favoritos con su negocio, más recientes primero.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	query := `
		SELECT f.user_id, f.created_at,
		       b.id, b.owner_id, b.name, b.description, b.whatsapp, b.logo_url, b.created_at, b.updated_at
		FROM favorites f
		JOIN businesses b ON b.id = f.business_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("list favorites", err)
	}
	defer rows.Close()
	var list []*entity.Favorite
	for rows.Next() {
		var f entity.Favorite
		var b entity.Business
		var description, whatsapp, logoURL *string
		if err := rows.Scan(&f.UserID, &f.CreatedAt,
			&b.ID, &b.OwnerID, &b.Name, &description, &whatsapp, &logoURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, wrapErr("scan favorite", err)
		}
		b.Description = stringOrEmpty(description)
		b.WhatsApp = stringOrEmpty(whatsapp)
		b.LogoURL = stringOrEmpty(logoURL)
		f.BusinessID = b.ID
		f.Business = &b
		list = append(list, &f)
	}
	return list, rows.Err()
}
