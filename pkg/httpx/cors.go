package httpx

import (
	"net/http"
	"regexp"
	"slices"
	"strings"
)

// CORSConfig lists the browser origins allowed to call the API with
// credentials. An origin is allowed when it is listed exactly or matches
// OriginPattern.
type CORSConfig struct {
	AllowedOrigins []string
	OriginPattern  *regexp.Regexp
}

var (
	corsMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsHeaders = "Authorization, Content-Type, Accept, Origin, X-Request-ID"
)

func (c CORSConfig) allowed(origin string) bool {
	if origin == "" {
		return false
	}
	if slices.Contains(c.AllowedOrigins, origin) {
		return true
	}
	return c.OriginPattern != nil && c.OriginPattern.MatchString(origin)
}

// CORS answers preflight requests with 204 and decorates allowed origins.
func CORS(cfg CORSConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			if cfg.allowed(origin) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Expose-Headers", "X-Request-ID")

				if req := r.Header.Get("Access-Control-Request-Headers"); req != "" {
					h.Set("Access-Control-Allow-Headers", req)
				} else {
					h.Set("Access-Control-Allow-Headers", corsHeaders)
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SplitOrigins parses a comma separated origin list, dropping blanks and
// trailing slashes.
func SplitOrigins(s string) []string {
	var out []string
	for o := range strings.SplitSeq(s, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" && !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	return out
}
