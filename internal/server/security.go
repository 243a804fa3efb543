package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening headers and CORS behavior of the
// operational endpoints.
type SecurityConfig struct {
	// EnableCORS toggles CORS header emission.
	EnableCORS bool
	// AllowedOrigins lists the origins allowed to read the endpoints.
	// The wildcard "*" matches any origin.
	AllowedOrigins []string
	// AllowedMethods lists the methods advertised in preflight responses.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the configuration used when none is
// provided: permissive CORS for read-only endpoints.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// corsOrigin resolves the Access-Control-Allow-Origin value for a request,
// or "" when no CORS headers should be emitted.
func (c SecurityConfig) corsOrigin(requestOrigin string) string {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if requestOrigin != "" && allowed == requestOrigin {
			return requestOrigin
		}
	}
	return ""
}

// SecurityMiddleware wraps next with hardening headers and CORS handling.
// OPTIONS preflight requests are answered directly with 204 No Content.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := config.corsOrigin(r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}
