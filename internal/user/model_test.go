package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reddy-infra/internal/apperr"
)

func ptr[T any](v T) *T { return &v }

func TestApply(t *testing.T) {
	base := Profile{Phone: "9876543210", UserType: "builder", City: "Pune"}

	t.Run("MergesOnlySetFields", func(t *testing.T) {
		got := Apply(base, Patch{City: ptr("Chennai"), IsOnboarded: ptr(true)})
		assert.Equal(t, Profile{IsOnboarded: true, Phone: "9876543210", UserType: "builder", City: "Chennai"}, got)
	})

	t.Run("EmptyPatchIsIdentity", func(t *testing.T) {
		assert.Equal(t, base, Apply(base, Patch{}))
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		_ = Apply(base, Patch{Name: ptr("Ravi")})
		assert.Empty(t, base.Name)
	})

	t.Run("CanClearField", func(t *testing.T) {
		got := Apply(base, Patch{City: ptr("")})
		assert.Empty(t, got.City)
	})
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Profile{}, Default())
}

func TestLookups(t *testing.T) {
	ut, ok := LookupUserType("architect")
	require.True(t, ok)
	assert.Equal(t, "Architect / Engineer", ut.Label)

	_, ok = LookupUserType("plumber")
	assert.False(t, ok)

	assert.Len(t, Cities, 10)
	assert.True(t, IsCity("Delhi NCR"))
	assert.False(t, IsCity("delhi ncr"))
}

func TestValidate(t *testing.T) {
	t.Run("EmptyProfile", func(t *testing.T) {
		assert.NoError(t, Validate(Default()))
	})

	t.Run("CompleteProfile", func(t *testing.T) {
		p := Profile{IsOnboarded: true, Phone: "9876543210", UserType: "contractor", City: "Delhi NCR"}
		assert.NoError(t, Validate(p))
	})

	t.Run("RejectsUnknownValues", func(t *testing.T) {
		err := Validate(Profile{Phone: "12345", UserType: "plumber", City: "Atlantis"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidProfile)
		assert.True(t, apperr.IsInvalidArgument(err))

		details, ok := apperr.As(err).Details().(map[string]string)
		require.True(t, ok)
		assert.Equal(t, map[string]string{"phone": "len", "userType": "usertype", "city": "city"}, details)
	})

	t.Run("RejectsNonDigitPhone", func(t *testing.T) {
		err := Validate(Profile{Phone: "98765-4321"})
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})
}
