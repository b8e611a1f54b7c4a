package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
	"github.com/aussiebroadwan/cookify/pkg/idx"
	"github.com/aussiebroadwan/cookify/pkg/jwtx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
)

// Gate turns an Authorization header into the user it belongs to. Every
// protected endpoint goes through it.
type Gate struct {
	Store    store.Store
	Verifier jwtx.Verifier
	Clock    Clock
}

// Authenticate resolves the caller. It returns ErrUnauthenticated for any
// header or token problem, ErrUserNotFound when the token names a user that
// no longer exists, and ErrServiceUnavailable when the directory fails.
func (g *Gate) Authenticate(ctx context.Context, authorization string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Pull the bearer token out of the header.
	if strings.TrimSpace(authorization) == "" {
		return domain.User{}, ErrNoCredentials
	}
	raw, ok := httpx.BearerToken(authorization)
	if !ok {
		return domain.User{}, ErrUnauthenticated
	}

	// 2. Signature, expiry and subject. The reason stays in the logs.
	subject, err := g.Verifier.Verify(raw, g.Clock.Now())
	if err != nil {
		log.Info("bearer token rejected", slog.Any("reason", err))
		return domain.User{}, ErrUnauthenticated
	}

	// 3. The subject has to look like one of our ids before we query on it.
	id, err := idx.Parse(subject)
	if err != nil {
		log.Warn("bearer token subject is not a user id", slog.String("sub", subject))
		return domain.User{}, ErrUnauthenticated
	}

	// 4. Directory lookup.
	u, err := g.Store.Users().GetUserByID(ctx, id.String())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("bearer token for unknown user", slog.String("user_id", id.String()))
			return domain.User{}, ErrUserNotFound
		}
		log.Error("failed to load user", slog.String("user_id", id.String()), slog.Any("error", err))
		return domain.User{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return u, nil
}
