package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/nexusadmin/pkg/jwtx"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

var (
	ErrNoToken      = Unauthorized("No token provided. Please log in.")
	ErrTokenExpired = Unauthorized("Token has expired. Please log in again.")
	ErrTokenInvalid = Unauthorized("Invalid token. Please log in again.")
)

// SessionChecker confirms that the subject of a verified token may still
// use the API and returns their current role. A returned StatusError is
// written to the client as is.
type SessionChecker interface {
	CheckSession(ctx context.Context, userID string) (role string, err error)
}

// Authenticate requires a valid bearer token whose user is still allowed in,
// and attaches the caller Identity to the request context.
func Authenticate(v jwtx.Verifier, sessions SessionChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := BearerToken(r)
			if !ok {
				WriteError(w, r, ErrNoToken)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("session token rejected", slog.Any("err", err))
				if errors.Is(err, jwtx.ErrExpired) {
					WriteError(w, r, ErrTokenExpired)
				} else {
					WriteError(w, r, ErrTokenInvalid)
				}
				return
			}

			// The live role wins over the claim so role changes apply at once
			role, err := sessions.CheckSession(ctx, claims.UserID())
			if err != nil {
				WriteError(w, r, err)
				return
			}

			ctx = WithIdentity(ctx, Identity{UserID: claims.UserID(), Role: role})
			ctx = slogx.WithUserID(ctx, claims.UserID())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
