package auth

import (
	"context"
	"net/http"
	"strconv"

	"marketplace/internal/entities"
)

// Identity is asserted upstream by the auth proxy, which terminates tokens
// and forwards the caller as headers. This service trusts those headers
// completely; it must never be exposed without the proxy in front.
const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

type contextKey struct{}

// Middleware extracts the caller identity and rejects requests without one.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
			if err != nil || userID <= 0 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role := entities.RoleType(r.Header.Get(HeaderRole))
			if !role.Valid() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ident := entities.Identity{
				UserID: userID,
				Role:   role,
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), ident)))
		})
	}
}

// RequireRole guards a route to the listed roles. 403 on mismatch.
func RequireRole(roles ...entities.RoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := FromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if ident.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.WriteHeader(http.StatusForbidden)
		})
	}
}

func WithIdentity(ctx context.Context, ident entities.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, ident)
}

func FromContext(ctx context.Context) (entities.Identity, bool) {
	ident, ok := ctx.Value(contextKey{}).(entities.Identity)
	return ident, ok
}
