package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := NewError(404, "thing not found")

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, 404, typed.Code)
	assert.Equal(t, "thing not found", err.Error())
}

func TestErrorIsMatchesCodeAndMessage(t *testing.T) {
	sentinel := NewError(404, "thing not found")

	assert.ErrorIs(t, NewError(404, "thing not found"), sentinel)
	assert.NotErrorIs(t, NewError(403, "thing not found"), sentinel)
	assert.NotErrorIs(t, NewError(404, "other thing not found"), sentinel)
	assert.NotErrorIs(t, errors.New("thing not found"), sentinel)
}

func TestErrorSurvivesWrapping(t *testing.T) {
	sentinel := NewError(404, "thing not found")
	wrapped := fmt.Errorf("lookup failed: %w", sentinel)

	assert.ErrorIs(t, wrapped, sentinel)

	var typed *Error
	require.ErrorAs(t, wrapped, &typed)
	assert.Equal(t, 404, typed.Code)
}
