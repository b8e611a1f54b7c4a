package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/cookify/internal/cookify/service"
	"github.com/aussiebroadwan/cookify/pkg/cookifysdk"
	"github.com/aussiebroadwan/cookify/pkg/httpx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
)

// writeError maps a service error onto its API error response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		cookifysdk.ErrInvalidRequest.WithDescription(detail(err, service.ErrInvalidInput)).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		cookifysdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrNoCredentials):
		httpx.NoCache(w)
		httpx.WriteBearerChallenge(w, cookifysdk.ErrInvalidToken.Description)
	case errors.Is(err, service.ErrUnauthenticated):
		cookifysdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		cookifysdk.ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrDuplicateEmail):
		cookifysdk.ErrEmailTaken.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		cookifysdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrServiceUnavailable):
		cookifysdk.ErrServiceUnavailable.WriteError(w)
	case errors.Is(err, service.ErrBadAIResponse):
		cookifysdk.ErrServerError.WithDescription("failed to parse AI response").WriteError(w)
	default:
		log.Error("unhandled error", "error", err)
		cookifysdk.ErrServerError.WriteError(w)
	}
}

// writeBadBody answers a request whose JSON body could not be decoded.
func writeBadBody(w http.ResponseWriter, err error) {
	if errors.Is(err, httpx.ErrBadBody) {
		cookifysdk.ErrInvalidRequest.WithDescription("invalid JSON in request body").WriteError(w)
		return
	}
	cookifysdk.ErrInvalidRequest.WriteError(w)
}

// detail strips the sentinel prefix from a wrapped validation error.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == sentinel.Error() {
		return cookifysdk.ErrInvalidRequest.Description
	}
	return msg
}
