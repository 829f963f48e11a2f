package middleware

import (
	"net/http"
	"strings"
)

// CORS rejects cross-origin requests from origins outside the allow-list.
// Requests without an Origin header pass through: CORS is browser
// enforcement, and non-browser clients and health probes send no Origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if !isOriginAllowed(origin, allowedOrigins) {
				writeError(w, http.StatusForbidden, "Origin not allowed by CORS policy")
				return
			}

			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isOriginAllowed(origin string, allowList []string) bool {
	if origin == "" {
		return true
	}
	for _, allowed := range allowList {
		if strings.EqualFold(origin, allowed) {
			return true
		}
	}
	return false
}
