package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.accounts.Register(ctx, "  Alice@Example.COM ", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
	require.Len(t, u.ID, 26)
	require.True(t, u.CreatedAt.Equal(env.now))
	require.NotEqual(t, "correct horse", u.PasswordHash)

	stored, err := env.store.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, stored.ID)
	require.True(t, env.hasher.Verify("correct horse", stored.PasswordHash))
}

func TestRegister_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, "alice@example.com", "pw1")
	require.NoError(t, err)

	_, err = env.accounts.Register(ctx, "ALICE@example.com", "pw2")
	require.ErrorIs(t, err, service.ErrDuplicateEmail)
}

func TestRegister_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]struct{ email, password string }{
		"empty email":       {"", "pw"},
		"no at":             {"alice.example.com", "pw"},
		"display name form": {"Alice <alice@example.com>", "pw"},
		"undotted domain":   {"alice@localhost", "pw"},
		"empty password":    {"alice@example.com", ""},
		"password too long": {"alice@example.com", strings.Repeat("x", cryptox.MaxPasswordBytes+1)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := env.accounts.Register(context.Background(), tc.email, tc.password)
			require.ErrorIs(t, err, service.ErrInvalidInput)
		})
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.accounts.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	tok, err := env.accounts.Login(ctx, "Alice@Example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "Bearer", tok.TokenType)
	require.Equal(t, 30*time.Minute, tok.ExpiresIn)
	require.True(t, tok.ExpiresAt.Equal(env.now.Add(30*time.Minute)))

	sub, err := env.tokens.Verify(tok.Token, env.now)
	require.NoError(t, err)
	require.Equal(t, u.ID, sub)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.accounts.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = env.accounts.Login(ctx, "alice@example.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.accounts.Login(ctx, "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.accounts.Login(ctx, "", "")
	require.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestLogin_UpgradesLegacyHash(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	u, err := env.accounts.Register(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	legacy, err := cryptox.NewHasher(cryptox.HasherConfig{Scheme: cryptox.SchemeArgon2id})
	require.NoError(t, err)
	argonHash, err := legacy.Hash("s3cret")
	require.NoError(t, err)
	require.NoError(t, env.store.Users().UpdatePasswordHash(ctx, u.ID, argonHash, env.now))

	env.advance(3 * time.Hour)
	_, err = env.accounts.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)

	stored, err := env.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "hash should be bcrypt after login")
	require.True(t, env.hasher.Verify("s3cret", stored.PasswordHash))
	require.True(t, env.now.Equal(stored.UpdatedAt), "updated_at should follow the service clock, got %v", stored.UpdatedAt)
	require.True(t, stored.CreatedAt.Before(stored.UpdatedAt))
}
