package middleware

import (
	"net/http"
	"strings"
)

// RedirectPrefix answers any request under from with a 307 to the same
// path under to. 307 keeps the method and body, so a POST stays a POST.
func RedirectPrefix(from, to string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rest, ok := strings.CutPrefix(r.URL.Path, from)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			target := to + rest
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
}
