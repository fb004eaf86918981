package httpx

import (
	"net/http"
	"slices"
)

var (
	ErrAuthRequired = Unauthorized("Authentication required.")
	ErrNoPermission = Forbidden("You do not have permission to perform this action.")
)

// RequireRoles lets the request through only when the caller's role is one of
// roles. It must run after Authenticate.
func RequireRoles(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				WriteError(w, r, ErrAuthRequired)
				return
			}
			if !slices.Contains(roles, id.Role) {
				WriteError(w, r, ErrNoPermission)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
