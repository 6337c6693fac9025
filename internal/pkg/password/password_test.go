//go:build unit

package password_test

import (
	"strings"
	"testing"

	"library-service/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPasswordWithCost("correct horse", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	t.Run("matching password", func(t *testing.T) {
		assert.NoError(t, password.ComparePassword(hash, "correct horse"))
	})

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, password.ComparePassword(hash, "battery staple"), password.ErrComparisonFailed)
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)

		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})

	t.Run("over the bcrypt limit", func(t *testing.T) {
		_, err := password.HashPasswordWithCost(strings.Repeat("x", password.MaxLength+1), bcrypt.MinCost)
		assert.ErrorIs(t, err, password.ErrInvalidPassword)
	})
}
