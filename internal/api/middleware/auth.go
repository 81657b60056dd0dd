package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/tfdeleon/bdnetworking/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth guards the ops-only routes with a shared token. This is
// deliberately minimal; the public booking routes carry no auth at all.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
