package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// SecretBytes is the entropy of a generated secret (256 bits).
const SecretBytes = 32

var ErrSecretSize = errors.New("cryptox: secret size must be positive")

// RandomSecret returns n random bytes encoded as unpadded base64url.
// It backs the throwaway development signing secret and the dummy password
// behind Hasher.VerifyDummy.
func RandomSecret(n int) (string, error) {
	if n <= 0 {
		return "", ErrSecretSize
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
