package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

func TestProfile_ActualizarContactoConservaRol(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.user(t, "c@example.com", entity.RoleCliente)

	out, err := f.profiles.UpdateContact(ctx, id.ID, dto.UpdateProfileRequest{Name: " Ana ", Phone: "3001234567"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "cliente", out.Role)

	got, err := f.profiles.Get(ctx, id.ID)
	require.NoError(t, err)
	assert.Equal(t, "3001234567", got.Phone)
}

func TestProfile_SinPerfil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.profiles.Get(ctx, "nadie")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = f.profiles.UpdateContact(ctx, "nadie", dto.UpdateProfileRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	id := f.user(t, "c@example.com", entity.RoleCliente)
	_, err = f.profiles.UpdateContact(ctx, id.ID, dto.UpdateProfileRequest{Phone: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
