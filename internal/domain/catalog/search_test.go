package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/MercadoLocal-api/internal/domain/catalog"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "panaderia", catalog.Fold("Panadería"))
	assert.Equal(t, "cafe nono", catalog.Fold("  CAFÉ Ñoño "))
}

func TestMatches(t *testing.T) {
	assert.True(t, catalog.Matches("Panadería San José", "jose"))
	assert.True(t, catalog.Matches("Panadería San José", "PANADERIA"))
	assert.True(t, catalog.Matches("Tienda A", ""))
	assert.False(t, catalog.Matches("Tienda A", "zapatos"))
}
