package jwtx_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/cookify/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newIssuer(t *testing.T) *jwtx.HS256Issuer {
	t.Helper()
	iss, err := jwtx.NewHS256Issuer(testSecret, 30*time.Minute)
	require.NoError(t, err)
	return iss
}

func TestNewHS256Issuer(t *testing.T) {
	_, err := jwtx.NewHS256Issuer(nil, time.Minute)
	require.ErrorIs(t, err, jwtx.ErrEmptySecret)

	iss, err := jwtx.NewHS256Issuer(testSecret, 0)
	require.NoError(t, err)
	require.Equal(t, jwtx.DefaultAccessTokenTTL, iss.TTL())
}

func TestHS256_RoundTrip(t *testing.T) {
	iss := newIssuer(t)
	now := time.Now()

	token, err := iss.Issue("01J9ZQ4ZK3T4B8Y2W6X0V5N7CD", now, 0)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	sub, err := iss.Verify(token, now)
	require.NoError(t, err)
	require.Equal(t, "01J9ZQ4ZK3T4B8Y2W6X0V5N7CD", sub)
}

func TestHS256_Expiry(t *testing.T) {
	iss := newIssuer(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := iss.Issue("u1", now, 0)
	require.NoError(t, err)

	_, err = iss.Verify(token, now.Add(29*time.Minute))
	require.NoError(t, err)

	_, err = iss.Verify(token, now.Add(31*time.Minute))
	require.ErrorIs(t, err, jwtx.ErrExpired)

	short, err := iss.Issue("u1", now, time.Second)
	require.NoError(t, err)
	_, err = iss.Verify(short, now.Add(2*time.Second))
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS256_TamperedSignature(t *testing.T) {
	iss := newIssuer(t)
	now := time.Now()

	token, err := iss.Issue("u1", now, 0)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[len(sig)/2] ^= 0xFF
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = iss.Verify(strings.Join(parts, "."), now)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS256_TamperedPayload(t *testing.T) {
	iss := newIssuer(t)
	now := time.Now()

	token, err := iss.Issue("u1", now, 0)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(strings.Replace(string(payload), `"u1"`, `"u2"`, 1)))

	_, err = iss.Verify(strings.Join(parts, "."), now)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS256_WrongSecret(t *testing.T) {
	now := time.Now()
	other, err := jwtx.NewHS256Issuer([]byte("another-secret"), time.Minute)
	require.NoError(t, err)

	token, err := other.Issue("u1", now, 0)
	require.NoError(t, err)

	_, err = newIssuer(t).Verify(token, now)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS256_AlgorithmMismatch(t *testing.T) {
	iss := newIssuer(t)
	now := time.Now()
	claims := jwtx.NewAccessClaims("u1", time.Minute, now)

	t.Run("none", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = iss.Verify(token, now)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})

	t.Run("HS512 with same secret", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
		require.NoError(t, err)

		_, err = iss.Verify(token, now)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})
}

func TestHS256_Malformed(t *testing.T) {
	iss := newIssuer(t)

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c", "...."} {
		t.Run(token, func(t *testing.T) {
			require.NotPanics(t, func() {
				_, err := iss.Verify(token, time.Now())
				require.ErrorIs(t, err, jwtx.ErrMalformed)
			})
		})
	}
}

func TestHS256_MissingSubject(t *testing.T) {
	iss := newIssuer(t)
	now := time.Now()

	token, err := iss.Issue("", now, 0)
	require.NoError(t, err)

	_, err = iss.Verify(token, now)
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
}
