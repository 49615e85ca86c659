package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddy-infra/internal/apperr"
)

func TestDefaultCatalog(t *testing.T) {
	repo := Default()

	categories := repo.Categories()
	require.Len(t, categories, 5)
	assert.Equal(t, []string{"cement", "steel", "electrical", "plumbing", "hardware"}, categoryIDs(categories))
	assert.Equal(t, 24, categories[0].ProductCount)

	products := repo.Products()
	require.Len(t, products, 8)
	assert.Equal(t, "cement-001", products[0].ID)
	assert.True(t, decimal.NewFromInt(420).Equal(products[0].RetailPrice))
	assert.True(t, decimal.NewFromInt(365).Equal(products[0].PooledPrice))

	assert.Len(t, repo.EducationCards(), 3)
}

func TestSpecsKeepOrder(t *testing.T) {
	p, err := Default().ProductByID("cement-001")
	require.NoError(t, err)

	names := make([]string, 0, len(p.Specs))
	for _, s := range p.Specs {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Type", "Grade", "Weight", "Setting Time", "Compressive Strength"}, names)

	v, ok := p.Specs.Get("Grade")
	assert.True(t, ok)
	assert.Equal(t, "53 Grade", v)

	_, ok = p.Specs.Get("Colour")
	assert.False(t, ok)
}

func TestSavingsNeverNegative(t *testing.T) {
	for _, p := range Default().Products() {
		pct, err := p.SavingsPercent()
		require.NoError(t, err, p.ID)
		assert.GreaterOrEqual(t, pct, 0, p.ID)
	}
}

func TestLookups(t *testing.T) {
	repo := Default()

	t.Run("ProductFound", func(t *testing.T) {
		p, err := repo.ProductByID("steel-002")
		require.NoError(t, err)
		assert.Equal(t, "JSW NeoSteel TMT", p.Name)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		_, err := repo.ProductByID("cement-999")
		assert.True(t, errors.Is(err, ErrProductNotFound))
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("CategoryNotFound", func(t *testing.T) {
		_, err := repo.CategoryByID("timber")
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("ByCategory", func(t *testing.T) {
		assert.Len(t, repo.ProductsByCategory("cement"), 3)
		assert.Empty(t, repo.ProductsByCategory("timber"))
	})
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	repo := Default()

	products := repo.Products()
	products[0].Name = "mutated"
	products[0].Specs[0].Value = "mutated"

	fresh, err := repo.ProductByID(products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "UltraTech PPC Cement", fresh.Name)
	assert.Equal(t, "Portland Pozzolana Cement", fresh.Specs[0].Value)
}

func TestParseRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"DuplicateCategory", `
categories: [{id: a}, {id: a}]
`},
		{"UnknownCategory", `
categories: [{id: a}]
products: [{id: p, category: b, retailPrice: "10", pooledPrice: "5", moq: 1, targetPoolQty: 1}]
`},
		{"PooledAboveRetail", `
categories: [{id: a}]
products: [{id: p, category: a, retailPrice: "10", pooledPrice: "11", moq: 1, targetPoolQty: 1}]
`},
		{"ZeroMOQ", `
categories: [{id: a}]
products: [{id: p, category: a, retailPrice: "10", pooledPrice: "5", moq: 0, targetPoolQty: 1}]
`},
		{"DuplicateProduct", `
categories: [{id: a}]
products:
  - {id: p, category: a, retailPrice: "10", pooledPrice: "5", moq: 1, targetPoolQty: 1}
  - {id: p, category: a, retailPrice: "10", pooledPrice: "5", moq: 1, targetPoolQty: 1}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte("categories: ["))
		assert.Error(t, err)
	})
}

func categoryIDs(cs []Category) []string {
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	return ids
}
