package postgres

import (
	"context"

	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// reviewSelect une el email del autor y el nombre del producto (campos de solo lectura).
const reviewSelect = `
	SELECT r.id, r.author_id, COALESCE(pr.email, ''), COALESCE(r.business_id::text, ''),
	       COALESCE(r.product_id::text, ''), COALESCE(p.name, ''), r.rating, COALESCE(r.comment, ''), r.created_at
	FROM reviews r
	LEFT JOIN profiles pr ON pr.id = r.author_id
	LEFT JOIN products p ON p.id = r.product_id`

// ReviewRepo tabla reviews.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador.
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// Create inserta la reseña. El CHECK de rating (1..5) se traduce a ErrInvalidInput.
func (r *ReviewRepo) Create(ctx context.Context, rv *entity.Review) error {
	query := `
		INSERT INTO reviews (id, author_id, business_id, product_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rv.ID, rv.AuthorID, nullString(rv.BusinessID), nullString(rv.ProductID), rv.Rating, nullString(rv.Comment), rv.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) || isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return wrapErr("insert review", err)
	}
	return nil
}

// ListByBusiness reseñas directas del negocio y las de sus productos.
func (r *ReviewRepo) ListByBusiness(ctx context.Context, businessID string) ([]*entity.Review, error) {
	return r.list(ctx, "list reviews by business",
		reviewSelect+` WHERE r.business_id = $1 OR p.business_id = $1 ORDER BY r.created_at DESC`, businessID)
}

// ListByAuthor reseñas escritas por el usuario.
func (r *ReviewRepo) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Review, error) {
	return r.list(ctx, "list reviews by author",
		reviewSelect+` WHERE r.author_id = $1 ORDER BY r.created_at DESC`, authorID)
}

func (r *ReviewRepo) list(ctx context.Context, op, query, arg string) ([]*entity.Review, error) {
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.AuthorID, &rv.AuthorEmail, &rv.BusinessID, &rv.ProductID,
			&rv.ProductName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, wrapErr("scan review", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}
