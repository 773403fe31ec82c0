package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/application/usecase"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/memory"
	"github.com/jhoicas/MercadoLocal-api/internal/infrastructure/storage"
	"github.com/jhoicas/MercadoLocal-api/pkg/logger"
)

// fixture arma los casos de uso sobre el almacén en memoria y un bucket mem://.
type fixture struct {
	store      *memory.Store
	blobs      *storage.BlobStorage
	images     *usecase.ImageUploader
	businesses *usecase.BusinessUseCase
	products   *usecase.ProductUseCase
	reviews    *usecase.ReviewUseCase
	favorites  *usecase.FavoriteUseCase
	profiles   *usecase.ProfileUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	blobs, err := storage.Open(context.Background(), "mem://", "http://cdn.test/imagenes")
	require.NoError(t, err)
	t.Cleanup(func() { _ = blobs.Close() })

	images := usecase.NewImageUploader(blobs, 1<<20)
	businesses := usecase.NewBusinessUseCase(store.Businesses(), store.Profiles(), store.TxRunner(), images, logger.Nop())
	return &fixture{
		store:      store,
		blobs:      blobs,
		images:     images,
		businesses: businesses,
		products:   usecase.NewProductUseCase(store.Products(), businesses, images),
		reviews:    usecase.NewReviewUseCase(store.Reviews(), store.Businesses(), store.Products(), businesses),
		favorites:  usecase.NewFavoriteUseCase(store.Favorites(), store.Businesses()),
		profiles:   usecase.NewProfileUseCase(store.Profiles()),
	}
}

func (f *fixture) user(t *testing.T, email string, role entity.Role) entity.Identity {
	t.Helper()
	id := entity.Identity{ID: uuid.New().String(), Email: email}
	if role != entity.RoleUnset {
		_, err := f.store.Profiles().UpsertRole(context.Background(), id.ID, id.Email, role)
		require.NoError(t, err)
	}
	return id
}

// seller crea un emprendedor con su negocio.
func (f *fixture) seller(t *testing.T, email, businessName string) (entity.Identity, *dto.BusinessCreatedResponse) {
	t.Helper()
	id := f.user(t, email, entity.RoleEmprendedor)
	created, err := f.businesses.Create(context.Background(), id, dto.CreateBusinessRequest{Name: businessName}, nil)
	require.NoError(t, err)
	return id, created
}

// brokenStorage simula un bucket que rechaza todas las escrituras.
type brokenStorage struct{}

func (brokenStorage) Put(context.Context, string, ports.Upload) error {
	return errors.New("bucket no disponible")
}

func (brokenStorage) PublicURL(key string) string { return "http://x/" + key }

// blockingStorage retiene la subida hasta que se cierra release (o se cancela su ctx).
type blockingStorage struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingStorage() *blockingStorage {
	return &blockingStorage{entered: make(chan struct{}), release: make(chan struct{})}
}

func (s *blockingStorage) Put(ctx context.Context, _ string, _ ports.Upload) error {
	s.once.Do(func() { close(s.entered) })
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *blockingStorage) PublicURL(key string) string { return "http://cdn.test/imagenes/" + key }
