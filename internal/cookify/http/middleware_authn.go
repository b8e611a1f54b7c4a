package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
)

// Authenticator resolves an Authorization header to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string) (domain.User, error)
}

// AuthnMiddleware rejects requests the Authenticator does not accept and
// stores the resolved user in the request context.
func AuthnMiddleware(a Authenticator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			u, err := a.Authenticate(ctx, r.Header.Get("Authorization"))
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx = contextWithUser(ctx, u)
			ctx = slogx.WithUserID(ctx, u.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
