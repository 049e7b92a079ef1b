package middleware

import (
	"net/http"
	"strings"

	"nextstep/internal/httputil"
)

// OriginAllowlist rejects cross-origin requests whose Origin header is
// not on the allow-list, before any handler (and so any upstream call)
// runs. CORS headers alone only instruct the browser; this enforces the
// policy server-side. Requests without an Origin header (same-origin,
// CLI clients, probes) pass through.
//
// Entries match exactly, except a "*." prefix on the host matches any
// subdomain (e.g. "https://*.vercel.app").
func OriginAllowlist(origins []string) func(http.Handler) http.Handler {
	allowed := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimSpace(strings.TrimSuffix(o, "/"))
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && !originAllowed(origin, allowed) {
				httputil.RespondError(w, http.StatusForbidden, "origin not allowed")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed []string) bool {
	origin = strings.ToLower(strings.TrimSuffix(origin, "/"))
	for _, a := range allowed {
		a = strings.ToLower(a)
		if a == "*" || a == origin {
			return true
		}
		// Wildcard subdomain entries like "https://*.vercel.app"
		if i := strings.Index(a, "://*."); i >= 0 {
			scheme := a[:i+len("://")]
			domain := a[i+len("://*."):]
			if strings.HasPrefix(origin, scheme) && strings.HasSuffix(origin, "."+domain) {
				return true
			}
		}
	}
	return false
}
