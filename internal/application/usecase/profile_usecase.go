package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
)

// ProfileUseCase lectura y datos de contacto del perfil. El rol se cambia por el flujo de onboarding.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get devuelve el perfil; (nil, nil) si el usuario aún no eligió rol.
func (uc *ProfileUseCase) Get(ctx context.Context, id string) (*dto.ProfileResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// UpdateContact actualiza nombre y teléfono. Sin perfil retorna ErrNotFound.
func (uc *ProfileUseCase) UpdateContact(ctx context.Context, id string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	phone := strings.TrimSpace(in.Phone)
	if !onlyDigits(phone) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.UpdateContact(ctx, id, strings.TrimSpace(in.Name), phone)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(p), nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		Role:      string(p.Role),
		Name:      p.Name,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
