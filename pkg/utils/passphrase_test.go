package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassphraseRoundTrip(t *testing.T) {
	hashed, err := HashPassphrase("annyeong")
	require.NoError(t, err)
	assert.Contains(t, hashed, "$argon2id$")

	ok, err := VerifyPassphrase("annyeong", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassphrase("hello", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassphraseSalts(t *testing.T) {
	a, err := HashPassphrase("same")
	require.NoError(t, err)
	b, err := HashPassphrase("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPassphraseInvalidHash(t *testing.T) {
	for _, h := range []string{"", "plain", "$2a$10$abcdefghijklmnopqrstuv", hashPrefix + "!!$??"} {
		_, err := VerifyPassphrase("x", h)
		assert.ErrorIs(t, err, ErrInvalidHash, h)
	}
}
