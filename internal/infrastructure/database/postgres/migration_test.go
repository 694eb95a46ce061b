// internal/infrastructure/database/postgres/migration_test.go
package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalog(t *testing.T) {
	products := seedProducts()
	require.Len(t, products, 8)

	prices := make(map[string]float64, len(products))
	featured := make(map[string]bool, len(products))
	for _, p := range products {
		prices[p.Name] = p.Price
		featured[p.Name] = p.Featured
		assert.NotEmpty(t, p.ID, p.Name)
		assert.NotEmpty(t, p.Description, p.Name)
		assert.NotEmpty(t, p.Category, p.Name)
		assert.Positive(t, p.Stock, p.Name)
	}

	assert.Equal(t, 1.20, prices["Baguette Tradition"])
	assert.Equal(t, 1.50, prices["Croissant Beurre"])
	assert.Equal(t, 2.99, prices["Tomates Bio"])
	assert.Equal(t, 4.50, prices["Fromage de Chèvre"])
	assert.Equal(t, 3.90, prices["Confiture Fraise Maison"])
	assert.Equal(t, 2.50, prices["Pâtes Artisanales"])
	assert.Equal(t, 2.10, prices["Pommes Locales"])
	assert.Equal(t, 1.80, prices["Bananes"])

	assert.True(t, featured["Baguette Tradition"])
	assert.True(t, featured["Tomates Bio"])
	assert.True(t, featured["Bananes"])
	assert.False(t, featured["Croissant Beurre"])
}
