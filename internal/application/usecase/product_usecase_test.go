package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
	"github.com/jhoicas/MercadoLocal-api/internal/application/ports"
	"github.com/jhoicas/MercadoLocal-api/internal/domain"
	"github.com/jhoicas/MercadoLocal-api/internal/domain/entity"
)

func TestCreateProduct_RequiereNegocio(t *testing.T) {
	f := newFixture(t)
	id := f.user(t, "a@example.com", entity.RoleEmprendedor)

	_, err := f.products.Create(context.Background(), id.ID, dto.CreateProductRequest{Name: "Pan", Price: decimal.NewFromInt(1)}, nil)
	assert.ErrorIs(t, err, domain.ErrNoBusiness)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	f := newFixture(t)
	id, _ := f.seller(t, "a@example.com", "Tienda A")
	neg := -1

	cases := []dto.CreateProductRequest{
		{Name: "", Price: decimal.NewFromInt(1)},
		{Name: "Pan", Price: decimal.NewFromInt(-1)},
		{Name: "Pan", Price: decimal.NewFromInt(1), Stock: &neg},
	}
	for _, in := range cases {
		_, err := f.products.Create(context.Background(), id.ID, in, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateProduct_ConImagenYListado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, created := f.seller(t, "a@example.com", "Tienda A")
	stock := 10
	img := &ports.Upload{Filename: "pan.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpg")}

	p, err := f.products.Create(ctx, id.ID, dto.CreateProductRequest{Name: "Pan", Price: decimal.RequireFromString("2500.50"), Stock: &stock}, img)
	require.NoError(t, err)
	assert.Equal(t, created.Business.ID, p.BusinessID)
	assert.True(t, strings.HasPrefix(p.ImageURL, "http://cdn.test/imagenes/productos/"))
	assert.True(t, strings.HasSuffix(p.ImageURL, ".jpg"))

	_, err = f.products.Create(ctx, id.ID, dto.CreateProductRequest{Name: "Torta", Price: decimal.Zero}, nil)
	require.NoError(t, err)

	list, err := f.products.List(ctx, id.ID, 1, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 2, list.Page.Total)
}

func TestProduct_AislamientoEntreNegocios(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a, _ := f.seller(t, "a@example.com", "Tienda A")
	b, _ := f.seller(t, "b@example.com", "Tienda B")

	p, err := f.products.Create(ctx, a.ID, dto.CreateProductRequest{Name: "Pan", Price: decimal.NewFromInt(1)}, nil)
	require.NoError(t, err)

	got, err := f.products.GetByID(ctx, b.ID, p.ID)
	assert.NoError(t, err)
	assert.Nil(t, got, "un producto de otro negocio no se ve")

	name := "Robado"
	upd, err := f.products.Update(ctx, b.ID, p.ID, dto.UpdateProductRequest{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, upd)

	assert.ErrorIs(t, f.products.Delete(ctx, b.ID, p.ID), domain.ErrNotFound)

	got, err = f.products.GetByID(ctx, a.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pan", got.Name)
}

func TestUpdateYDeleteProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id, _ := f.seller(t, "a@example.com", "Tienda A")
	p, err := f.products.Create(ctx, id.ID, dto.CreateProductRequest{Name: "Pan", Price: decimal.NewFromInt(1)}, nil)
	require.NoError(t, err)

	price := decimal.NewFromInt(3)
	stock := 0
	upd, err := f.products.Update(ctx, id.ID, p.ID, dto.UpdateProductRequest{Price: &price, Stock: &stock})
	require.NoError(t, err)
	assert.True(t, upd.Price.Equal(price))
	require.NotNil(t, upd.Stock)
	assert.Equal(t, 0, *upd.Stock)

	negative := decimal.NewFromInt(-5)
	_, err = f.products.Update(ctx, id.ID, p.ID, dto.UpdateProductRequest{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, f.products.Delete(ctx, id.ID, p.ID))
	got, err := f.products.GetByID(ctx, id.ID, p.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
