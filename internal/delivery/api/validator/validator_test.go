package validator

import (
	"testing"

	domainerrors "budget/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email string `json:"email" validate:"max=10"`
	Type  string `json:"type" validate:"omitempty,oneof=income expense"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Email: "a@b.co", Type: "income"}))

	err := v.Validate(&sample{Email: "someone@example.com"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "'email' is too long.")

	err = v.Validate(&sample{Type: "gift"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "Invalid 'type'.")
}
