package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddy-infra/internal/apperr"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"98765 43210", "9876543210"},
		{"+91-98765-43210", "9198765432"},
		{"abc", ""},
		{"123", "123"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestPhoneComplete(t *testing.T) {
	assert.True(t, PhoneComplete("9876543210"))
	assert.False(t, PhoneComplete("987654321"))
	assert.False(t, PhoneComplete("98765x3210"))
}

func TestAcceptOTP(t *testing.T) {
	assert.NoError(t, AcceptOTP("0000"))
	assert.NoError(t, AcceptOTP("4821"))
	assert.ErrorIs(t, AcceptOTP("482"), ErrInvalidOTP)
	assert.ErrorIs(t, AcceptOTP("48a1"), ErrInvalidOTP)
}

func TestOnboard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		patch, err := Onboard("98765 43210", "retailer", "Jaipur")
		require.NoError(t, err)

		got := Apply(Default(), patch)
		assert.Equal(t, Profile{IsOnboarded: true, Phone: "9876543210", UserType: "retailer", City: "Jaipur"}, got)
	})

	t.Run("ShortPhone", func(t *testing.T) {
		_, err := Onboard("12345", "retailer", "Jaipur")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("MissingSelections", func(t *testing.T) {
		_, err := Onboard("9876543210", "", "")
		require.ErrorIs(t, err, ErrInvalidProfile)
		assert.True(t, apperr.IsInvalidArgument(err))
		assert.Equal(t, map[string]string{"userType": "required", "city": "required"}, apperr.As(err).Details())
	})

	t.Run("MissingCity", func(t *testing.T) {
		_, err := Onboard("9876543210", "contractor", "")
		require.ErrorIs(t, err, ErrInvalidProfile)
		assert.Equal(t, map[string]string{"city": "required"}, apperr.As(err).Details())
	})

	t.Run("UnknownCity", func(t *testing.T) {
		_, err := Onboard("9876543210", "retailer", "Atlantis")
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})
}
