package jwtx

import (
	"errors"
	"time"
)

// Issuer mints signed access tokens for a subject.
type Issuer interface {
	Issue(subject string, now time.Time, ttl time.Duration) (string, error)
}

// Verifier validates a JWT and gives you back the subject if it's legit.
// now is passed in so callers (and tests) own the clock.
type Verifier interface {
	Verify(token string, now time.Time) (string, error)
}

var (
	ErrEmptySecret = errors.New("jwtx: empty signing secret")

	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)
