package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime used when no TTL is configured.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims. Only registered claims are used; the
// subject carries the user id and nothing else about the user is embedded.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds minimally-correct claims.
func NewAccessClaims(subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateExpiry checks exp and nbf against now. A token is usable while
// now is strictly before exp. A token without exp is rejected.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateSubject ensures the token names somebody.
func (c *Claims) ValidateSubject() error {
	if strings.TrimSpace(c.Subject) == "" {
		return ErrInvalidClaim
	}
	return nil
}
