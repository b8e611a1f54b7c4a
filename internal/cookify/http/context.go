package http

import (
	"context"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
)

type ctxKey struct{}

func contextWithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext returns the user resolved by AuthnMiddleware.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(domain.User)
	return u, ok && u.ID != ""
}
