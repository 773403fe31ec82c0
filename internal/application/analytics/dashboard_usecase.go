// Package analytics contiene los casos de uso de indicadores del panel del emprendedor.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/reputation"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardUseCase calcula los KPIs del negocio a partir de las filas leídas.
// No hay caché: cada carga del panel vuelve a consultar.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, reviewRepo: reviewRepo}
}

// Summary construye el DashboardSummaryDTO del negocio.
//
// Dos consultas en paralelo:
//  1. CountByBusiness → TotalProducts
//  2. ListByBusiness (reseñas directas y de productos) → TotalReviews + AverageRating
func (uc *DashboardUseCase) Summary(ctx context.Context, business *entity.Business) (*dto.DashboardSummaryDTO, error) {
	if business == nil {
		return nil, fmt.Errorf("dashboard: negocio requerido")
	}

	var (
		totalProducts int
		ratings       []int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.productRepo.CountByBusiness(gctx, business.ID)
		if err != nil {
			return fmt.Errorf("dashboard: contar productos: %w", err)
		}
		totalProducts = n
		return nil
	})
	g.Go(func() error {
		reviews, err := uc.reviewRepo.ListByBusiness(gctx, business.ID)
		if err != nil {
			return fmt.Errorf("dashboard: reseñas: %w", err)
		}
		ratings = make([]int, 0, len(reviews))
		for _, r := range reviews {
			ratings = append(ratings, r.Rating)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := reputation.Summarize(ratings)
	return &dto.DashboardSummaryDTO{
		TotalProducts: totalProducts,
		TotalReviews:  summary.Total,
		AverageRating: dto.NewRating(summary.Average),
	}, nil
}
