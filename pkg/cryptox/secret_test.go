package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSecret(t *testing.T) {
	for _, n := range []int{1, 16, SecretBytes} {
		s, err := RandomSecret(n)
		require.NoError(t, err)
		require.Len(t, s, base64.RawURLEncoding.EncodedLen(n))

		raw, err := base64.RawURLEncoding.DecodeString(s)
		require.NoError(t, err)
		require.Len(t, raw, n)
	}

	a, err := RandomSecret(SecretBytes)
	require.NoError(t, err)
	b, err := RandomSecret(SecretBytes)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestRandomSecret_InvalidSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		s, err := RandomSecret(n)
		require.ErrorIs(t, err, ErrSecretSize)
		require.Empty(t, s)
	}
}
