package httpx

import (
	"net/http"
	"strings"
)

// BearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively; an empty token is not a token.
func BearerToken(authorization string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}

// WriteBearerError writes an RFC 6750 invalid_token challenge with a JSON
// body in the same shape as other API errors.
func WriteBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	writeTokenError(w, desc)
}

// WriteBearerChallenge answers a request that sent no credentials at all.
// RFC 6750 section 3.1 wants a bare challenge without an error code then.
func WriteBearerChallenge(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeTokenError(w, desc)
}

func writeTokenError(w http.ResponseWriter, desc string) {
	WriteJSON(w, http.StatusUnauthorized, map[string]string{
		"error":             "invalid_token",
		"error_description": desc,
	})
}
