package guard

import (
	"net/http"

	"historycar/internal/session"
)

// Middleware applies Evaluate at the routing boundary. Allowed protected
// routes get cache-suppression headers so authenticated content never survives
// in a shared or back-forward cache after logout.
func Middleware(store session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := Evaluate(r.URL.Path, store.HasValidSession(r))
			if !decision.Allow {
				http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
				return
			}
			if IsProtected(r.URL.Path) {
				w.Header().Set("Cache-Control", "private, no-cache, no-store, must-revalidate")
				w.Header().Set("Pragma", "no-cache")
				w.Header().Set("Expires", "0")
			}
			next.ServeHTTP(w, r)
		})
	}
}
