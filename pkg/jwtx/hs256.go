package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Issuer signs and verifies access tokens with a shared HMAC secret.
// It implements both Issuer and Verifier and is safe for concurrent use.
type HS256Issuer struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

// NewHS256Issuer copies secret and returns an issuer whose tokens live for
// ttl. A non-positive ttl falls back to DefaultAccessTokenTTL.
func NewHS256Issuer(secret []byte, ttl time.Duration) (*HS256Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS256Issuer{
		secret: key,
		ttl:    ttl,
		// Time based claims are checked by Verify against the caller's clock.
		parser: jwt.NewParser(jwt.WithoutClaimsValidation(), jwt.WithStrictDecoding()),
	}, nil
}

// TTL reports the default token lifetime.
func (i *HS256Issuer) TTL() time.Duration { return i.ttl }

// Issue mints a token for subject valid from now until now+ttl.
func (i *HS256Issuer) Issue(subject string, now time.Time, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = i.ttl
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, NewAccessClaims(subject, ttl, now))
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, then expiry against now, then the subject,
// and returns the subject.
func (i *HS256Issuer) Verify(tokenStr string, now time.Time) (string, error) {
	claims := &Claims{}

	_, err := i.parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("%w: %v", ErrAlgMismatch, t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlgMismatch), errors.Is(err, jwt.ErrTokenUnverifiable):
			return "", ErrAlgMismatch
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrInvalidSig
		default:
			return "", ErrMalformed
		}
	}

	if err := claims.ValidateExpiry(now); err != nil {
		return "", err
	}
	if err := claims.ValidateSubject(); err != nil {
		return "", err
	}

	return claims.Subject, nil
}
