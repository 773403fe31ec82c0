package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

func TestFavoritos_AgregarEsIdempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, created := f.seller(t, "a@example.com", "Tienda A")
	cliente := f.user(t, "c@example.com", entity.RoleCliente)

	require.NoError(t, f.favorites.Add(ctx, cliente.ID, created.Business.ID))
	require.NoError(t, f.favorites.Add(ctx, cliente.ID, created.Business.ID))

	list, err := f.favorites.List(ctx, cliente.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Tienda A", list[0].Business.Name)

	require.NoError(t, f.favorites.Remove(ctx, cliente.ID, created.Business.ID))
	require.NoError(t, f.favorites.Remove(ctx, cliente.ID, created.Business.ID))
	list, err = f.favorites.List(ctx, cliente.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFavoritos_NegocioInexistente(t *testing.T) {
	f := newFixture(t)
	err := f.favorites.Add(context.Background(), "u", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
