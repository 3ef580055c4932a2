package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("admin123", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("admin123", "not-a-hash"))
	assert.True(t, IsBcryptHash(hash))
}

func TestIsBcryptHash(t *testing.T) {
	assert.False(t, IsBcryptHash(""))
	assert.False(t, IsBcryptHash("admin123"))
	assert.False(t, IsBcryptHash("$2a$12$tooshort"))
}

func TestRandomBytes(t *testing.T) {
	b, err := RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, b, 32)
}

func TestHashPasswordAndRandom_ErrorBranches(t *testing.T) {
	origBcrypt := bcryptGenerateFromPassword
	origRandRead := randomRead
	t.Cleanup(func() {
		bcryptGenerateFromPassword = origBcrypt
		randomRead = origRandRead
	})

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("x")
	assert.ErrorContains(t, err, "failed to hash password")

	randomRead = func([]byte) (int, error) {
		return 0, errors.New("entropy exhausted")
	}
	_, err = RandomBytes(8)
	assert.ErrorContains(t, err, "failed to read random bytes")
}
