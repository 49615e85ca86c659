package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddy-infra/internal/apperr"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"Zero", "0", "₹0"},
		{"ThreeDigits", "365", "₹365"},
		{"RoundsUp", "420.6", "₹421"},
		{"RoundsHalfUp", "420.5", "₹421"},
		{"RoundsDown", "420.4", "₹420"},
		{"Thousands", "4850", "₹4,850"},
		{"Lakh", "420000", "₹4,20,000"},
		{"TenLakh", "1234567", "₹12,34,567"},
		{"Crore", "730000000", "₹73,00,00,000"},
		{"Negative", "-56700", "-₹56,700"},
		{"NegativeRounding", "-0.4", "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatINR(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestSavingsPercent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		got, err := SavingsPercent(decimal.NewFromInt(420), decimal.NewFromInt(365))
		require.NoError(t, err)
		assert.Equal(t, 13, got)

		got, err = SavingsPercent(decimal.NewFromInt(72500), decimal.NewFromInt(65800))
		require.NoError(t, err)
		assert.Equal(t, 9, got)
	})

	t.Run("NoDiscount", func(t *testing.T) {
		got, err := SavingsPercent(decimal.NewFromInt(100), decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("ZeroRetail", func(t *testing.T) {
		_, err := SavingsPercent(decimal.Zero, decimal.Zero)
		assert.True(t, errors.Is(err, ErrNonPositiveRetail))
		assert.True(t, apperr.IsInvalidArgument(err))
	})
}

func TestPercent(t *testing.T) {
	got, err := Percent(2450, 5000)
	require.NoError(t, err)
	assert.Equal(t, 49, got)

	got, err = Percent(35, 100)
	require.NoError(t, err)
	assert.Equal(t, 35, got)

	got, err = Percent(6000, 5000)
	require.NoError(t, err)
	assert.Equal(t, 120, got)

	_, err = Percent(1, 0)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestLineTotal(t *testing.T) {
	assert.True(t, decimal.NewFromInt(36500).Equal(LineTotal(decimal.NewFromInt(365), 100)))
	assert.True(t, LineTotal(decimal.NewFromInt(365), 0).IsZero())
}
