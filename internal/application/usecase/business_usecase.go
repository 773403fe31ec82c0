package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/repository"
	"github.com/jhoicas/MercadoLocal-api/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// PathWelcome pantalla de bienvenida tras crear el negocio.
const PathWelcome = "/dashboard/welcome"

// businessCreateTimeout tope del alta compartida (validación, logo e insert).
const businessCreateTimeout = 30 * time.Second

// BusinessUseCase alta y edición del negocio del emprendedor.
type BusinessUseCase struct {
	businessRepo repository.BusinessRepository
	profileRepo  repository.ProfileRepository
	tx           ports.BusinessTxRunner
	images       *ImageUploader
	log          *logger.Logger
	inflight     singleflight.Group
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(
	businessRepo repository.BusinessRepository,
	profileRepo repository.ProfileRepository,
	tx ports.BusinessTxRunner,
	images *ImageUploader,
	log *logger.Logger,
) *BusinessUseCase {
	return &BusinessUseCase{businessRepo: businessRepo, profileRepo: profileRepo, tx: tx, images: images, log: log}
}

// Create da de alta el negocio del usuario. Es una sola intención atómica:
// validar, subir el logo (opcional) e insertar la fila.
//
// Un segundo envío del mismo dueño nunca duplica la fila:
//   - llamadas concurrentes en este proceso se colapsan en una sola ejecución;
//   - la comprobación y el insert corren en una transacción serializada por dueño;
//   - el índice único de owner_id cubre lo que quede.
func (uc *BusinessUseCase) Create(ctx context.Context, identity entity.Identity, in dto.CreateBusinessRequest, logo *ports.Upload) (*dto.BusinessCreatedResponse, error) {
	name := strings.TrimSpace(in.Name)
	whatsapp := strings.TrimSpace(in.WhatsApp)
	if name == "" || !onlyDigits(whatsapp) {
		return nil, domain.ErrInvalidInput
	}
	in.Name, in.WhatsApp = name, whatsapp

	// La ejecución compartida no hereda la cancelación de quien llegó primero:
	// cada llamador deja de esperar con su propio ctx y los demás reciben el resultado.
	ch := uc.inflight.DoChan(identity.ID, func() (interface{}, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), businessCreateTimeout)
		defer cancel()
		return uc.create(runCtx, identity, in, logo)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			uc.log.Warn().Str("owner_id", identity.ID).Msg("alta de negocio concurrente colapsada")
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*dto.BusinessCreatedResponse), nil
	}
}

func (uc *BusinessUseCase) create(ctx context.Context, identity entity.Identity, in dto.CreateBusinessRequest, logo *ports.Upload) (*dto.BusinessCreatedResponse, error) {
	// Comprobación previa fuera de la transacción: evita subir un logo que no se va a usar.
	if err := checkCanCreate(ctx, uc.profileRepo, uc.businessRepo, identity.ID); err != nil {
		return nil, err
	}

	var logoURL string
	if logo != nil {
		var err error
		if logoURL, err = uc.images.Store(ctx, FolderLogos, *logo); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	business := &entity.Business{
		ID:          uuid.New().String(),
		OwnerID:     identity.ID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		WhatsApp:    in.WhatsApp,
		LogoURL:     logoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.RunForOwner(ctx, identity.ID, func(profiles repository.ProfileRepository, businesses repository.BusinessRepository) error {
		if err := checkCanCreate(ctx, profiles, businesses, identity.ID); err != nil {
			return err
		}
		return businesses.Create(ctx, business)
	})
	if err != nil {
		if errors.Is(err, domain.ErrBusinessExists) {
			uc.log.Warn().Str("owner_id", identity.ID).Msg("negocio duplicado rechazado")
		}
		return nil, err
	}
	uc.log.Info().Str("owner_id", identity.ID).Str("business_id", business.ID).Msg("negocio creado")

	return &dto.BusinessCreatedResponse{
		Business: dto.ToBusinessResponse(business),
		Redirect: PathWelcome,
	}, nil
}

// checkCanCreate exige rol emprendedor y que el dueño aún no tenga negocio.
func checkCanCreate(ctx context.Context, profiles repository.ProfileRepository, businesses repository.BusinessRepository, ownerID string) error {
	profile, err := profiles.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if profile == nil || profile.Role != entity.RoleEmprendedor {
		return domain.ErrForbidden
	}
	existing, err := businesses.GetByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrBusinessExists
	}
	return nil
}

// RequireOwn devuelve el negocio del usuario o ErrNoBusiness.
func (uc *BusinessUseCase) RequireOwn(ctx context.Context, ownerID string) (*entity.Business, error) {
	business, err := uc.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNoBusiness
	}
	return business, nil
}

// GetMine negocio del usuario; (nil, nil) si aún no tiene.
func (uc *BusinessUseCase) GetMine(ctx context.Context, ownerID string) (*dto.BusinessResponse, error) {
	business, err := uc.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil || business == nil {
		return nil, err
	}
	out := dto.ToBusinessResponse(business)
	return &out, nil
}

// Update edita el negocio propio; un logo nuevo reemplaza la URL anterior.
func (uc *BusinessUseCase) Update(ctx context.Context, ownerID string, in dto.UpdateBusinessRequest, logo *ports.Upload) (*dto.BusinessResponse, error) {
	business, err := uc.RequireOwn(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		business.Name = name
	}
	if in.Description != nil {
		business.Description = strings.TrimSpace(*in.Description)
	}
	if in.WhatsApp != nil {
		w := strings.TrimSpace(*in.WhatsApp)
		if !onlyDigits(w) {
			return nil, domain.ErrInvalidInput
		}
		business.WhatsApp = w
	}
	if logo != nil {
		url, err := uc.images.Store(ctx, FolderLogos, *logo)
		if err != nil {
			return nil, err
		}
		business.LogoURL = url
	}
	business.UpdatedAt = time.Now()
	if err := uc.businessRepo.Update(ctx, business); err != nil {
		return nil, fmt.Errorf("actualizar negocio: %w", err)
	}
	out := dto.ToBusinessResponse(business)
	return &out, nil
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
