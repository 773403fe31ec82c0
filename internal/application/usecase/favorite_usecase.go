package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

// FavoriteUseCase negocios favoritos del usuario.
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	businessRepo repository.BusinessRepository
}

// NewFavoriteUseCase construye el caso de uso.
func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, businessRepo repository.BusinessRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favoriteRepo: favoriteRepo, businessRepo: businessRepo}
}

// Add marca el negocio como favorito. Repetirlo no crea duplicados.
func (uc *FavoriteUseCase) Add(ctx context.Context, userID, businessID string) error {
	business, err := uc.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return err
	}
	if business == nil {
		return domain.ErrNotFound
	}
	return uc.favoriteRepo.Add(ctx, &entity.Favorite{UserID: userID, BusinessID: business.ID, CreatedAt: time.Now()})
}

// Remove quita el favorito; quitar uno inexistente no es error.
func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, businessID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, businessID)
}

// List favoritos del usuario, más recientes primero.
func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]dto.FavoriteResponse, error) {
	list, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FavoriteResponse, 0, len(list))
	for _, f := range list {
		if f.Business == nil {
			continue
		}
		items = append(items, dto.FavoriteResponse{Business: dto.ToBusinessResponse(f.Business), CreatedAt: f.CreatedAt})
	}
	return items, nil
}
