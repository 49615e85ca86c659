package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddy-infra/internal/apperr"
	"reddy-infra/internal/catalog"
)

func product(id string, retail, pooled int64, moq int) catalog.Product {
	return catalog.Product{
		ID:          id,
		Name:        id,
		RetailPrice: decimal.NewFromInt(retail),
		PooledPrice: decimal.NewFromInt(pooled),
		MOQ:         moq,
	}
}

var (
	cement = product("cement-001", 420, 365, 100)
	steel  = product("steel-001", 72500, 65800, 5)
)

func TestAdd(t *testing.T) {
	t.Run("NewLine", func(t *testing.T) {
		items, err := Add(nil, cement, 100)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 100, items[0].Quantity)
	})

	t.Run("MergesSameProduct", func(t *testing.T) {
		items, err := Add(nil, cement, 100)
		require.NoError(t, err)
		items, err = Add(items, cement, 100)
		require.NoError(t, err)

		require.Len(t, items, 1)
		assert.Equal(t, 200, items[0].Quantity)
	})

	t.Run("KeepsFirstSnapshot", func(t *testing.T) {
		items, _ := Add(nil, cement, 100)
		repriced := cement
		repriced.PooledPrice = decimal.NewFromInt(300)

		items, err := Add(items, repriced, 100)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(365).Equal(items[0].Product.PooledPrice))
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		items, _ := Add(nil, cement, 100)
		_, err := Add(items, cement, 50)
		require.NoError(t, err)
		assert.Equal(t, 100, items[0].Quantity)
	})

	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		_, err := Add(nil, cement, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		_, err = Add(nil, cement, -5)
		assert.True(t, apperr.IsInvalidArgument(err))
	})

	t.Run("RejectsEmptyProduct", func(t *testing.T) {
		_, err := Add(nil, catalog.Product{}, 1)
		assert.ErrorIs(t, err, ErrInvalidProduct)
	})

	t.Run("DoesNotAlignToMOQ", func(t *testing.T) {
		items, err := Add(nil, cement, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, items[0].Quantity)
	})
}

func TestRemove(t *testing.T) {
	items, _ := Add(nil, cement, 100)
	items, _ = Add(items, steel, 5)

	got := Remove(items, cement.ID)
	require.Len(t, got, 1)
	assert.Equal(t, steel.ID, got[0].Product.ID)
	assert.Len(t, items, 2)

	assert.Equal(t, items, Remove(items, "missing"))
}

func TestSetQuantity(t *testing.T) {
	items, _ := Add(nil, cement, 100)

	got, err := SetQuantity(items, cement.ID, 300)
	require.NoError(t, err)
	assert.Equal(t, 300, got[0].Quantity)
	assert.Equal(t, 100, items[0].Quantity)

	got, err = SetQuantity(items, "missing", 300)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	_, err = SetQuantity(items, cement.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestFind(t *testing.T) {
	items, _ := Add(nil, cement, 100)

	it, err := Find(items, cement.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, it.Quantity)

	_, err = Find(items, "missing")
	assert.True(t, apperr.IsNotFound(err))
}

func TestTotals(t *testing.T) {
	items, _ := Add(nil, cement, 200)
	items, _ = Add(items, steel, 10)

	// 365*200 + 65800*10
	assert.True(t, decimal.NewFromInt(731000).Equal(Total(items)), Total(items).String())
	// 55*200 + 6700*10
	assert.True(t, decimal.NewFromInt(78000).Equal(Savings(items)), Savings(items).String())
	assert.Equal(t, 210, Count(items))

	assert.True(t, decimal.NewFromInt(73000).Equal(items[0].LineTotal()))
	assert.True(t, decimal.NewFromInt(11000).Equal(items[0].LineSavings()))

	assert.True(t, Total(nil).IsZero())
	assert.True(t, Savings(nil).IsZero())
	assert.Equal(t, 0, Count(nil))
}

func TestClone(t *testing.T) {
	withSpecs := cement
	withSpecs.Specs = catalog.Specs{{Name: "Grade", Value: "OPC 53"}}

	items, err := Add(nil, withSpecs, 100)
	require.NoError(t, err)
	withSpecs.Specs[0].Value = "changed"
	assert.Equal(t, "OPC 53", items[0].Product.Specs[0].Value)

	copied := Clone(items)
	copied[0].Product.Specs[0].Value = "changed"
	copied[0].Quantity = 1
	assert.Equal(t, "OPC 53", items[0].Product.Specs[0].Value)
	assert.Equal(t, 100, items[0].Quantity)

	found, err := Find(items, cement.ID)
	require.NoError(t, err)
	found.Product.Specs[0].Value = "changed"
	assert.Equal(t, "OPC 53", items[0].Product.Specs[0].Value)
}

func TestValidate(t *testing.T) {
	items, err := Add(nil, cement, 100)
	require.NoError(t, err)
	items, err = Add(items, steel, 5)
	require.NoError(t, err)
	assert.NoError(t, Validate(items))
	assert.NoError(t, Validate(nil))

	tests := []struct {
		name  string
		items []Item
		want  error
	}{
		{"MissingProductID", []Item{{Product: catalog.Product{Name: "x"}, Quantity: 1}}, ErrInvalidProduct},
		{"ZeroQuantity", []Item{{Product: cement, Quantity: 0}}, ErrInvalidQuantity},
		{"NegativeQuantity", []Item{{Product: cement, Quantity: -5}}, ErrInvalidQuantity},
		{"DuplicateProduct", []Item{{Product: cement, Quantity: 100}, {Product: cement, Quantity: 50}}, ErrDuplicateItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.items)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, apperr.IsInvalidArgument(err))
		})
	}
}
