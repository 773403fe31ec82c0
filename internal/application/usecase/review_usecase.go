package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/reputation"
)

// ReviewUseCase reseñas de clientes sobre negocios y productos.
type ReviewUseCase struct {
	reviewRepo   repository.ReviewRepository
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	businesses   *BusinessUseCase
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	businesses *BusinessUseCase,
) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: reviewRepo, businessRepo: businessRepo, productRepo: productRepo, businesses: businesses}
}

// Create registra la reseña del autor sobre businessID (o sobre uno de sus productos).
// El dueño no puede reseñar su propio negocio.
func (uc *ReviewUseCase) Create(ctx context.Context, author entity.Identity, businessID string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if in.Rating < entity.MinRating || in.Rating > entity.MaxRating {
		return nil, domain.ErrInvalidInput
	}
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	if business.OwnerID == author.ID {
		return nil, domain.ErrForbidden
	}

	review := &entity.Review{
		ID:          uuid.New().String(),
		AuthorID:    author.ID,
		AuthorEmail: author.Email,
		BusinessID:  business.ID,
		Rating:      in.Rating,
		Comment:     strings.TrimSpace(in.Comment),
		CreatedAt:   time.Now(),
	}
	if in.ProductID != "" {
		product, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.BusinessID != business.ID {
			return nil, domain.ErrInvalidInput
		}
		review.ProductID = product.ID
		review.ProductName = product.Name
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	out := toReviewResponse(review)
	return &out, nil
}

// ListForOwner reseñas del negocio propio con total y promedio.
func (uc *ReviewUseCase) ListForOwner(ctx context.Context, ownerID string) (*dto.BusinessReviewsResponse, error) {
	business, err := uc.businesses.RequireOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	list, err := uc.reviewRepo.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	ratings := make([]int, 0, len(list))
	for _, r := range list {
		item := toReviewResponse(r)
		if item.BusinessID == "" {
			item.BusinessID = business.ID
		}
		items = append(items, item)
		ratings = append(ratings, r.Rating)
	}
	summary := reputation.Summarize(ratings)
	return &dto.BusinessReviewsResponse{
		Items:         items,
		TotalReviews:  summary.Total,
		AverageRating: dto.NewRating(summary.Average),
	}, nil
}

// ListMine reseñas escritas por el usuario.
func (uc *ReviewUseCase) ListMine(ctx context.Context, authorID string) ([]dto.ReviewResponse, error) {
	list, err := uc.reviewRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toReviewResponse(r))
	}
	return items, nil
}

func toReviewResponse(r *entity.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		ProductID:   r.ProductID,
		ProductName: r.ProductName,
		AuthorEmail: r.AuthorEmail,
		Rating:      r.Rating,
		Comment:     r.Comment,
		CreatedAt:   r.CreatedAt,
	}
}
