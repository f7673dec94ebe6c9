package middleware

import (
	"context"
	"errors"
	"net/http"

	"fashionhub/internal/auth"
	"fashionhub/internal/model"

	"github.com/rs/zerolog"
)

// TokenVerifier checks a raw session token and returns the identity it was issued to.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

// AdminChecker reports whether an identity is on the admin allow-list.
type AdminChecker interface {
	IsAdmin(identity string) bool
}

type identityKey struct{}

// IdentityFromContext returns the admin identity stored by RequireAdmin.
func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey{}).(string)
	return identity, ok
}

// RequireAdmin rejects requests that do not carry a valid bearer token issued
// to an admin. Missing, expired or malformed tokens get 401; valid tokens for
// identities that are no longer admins get 403. The wrapped handler is never
// invoked for a rejected request.
func RequireAdmin(verifier TokenVerifier, admins AdminChecker, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("middleware", "admin").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := auth.BearerToken(r.Header.Get("Authorization"))

			identity, err := verifier.Verify(raw)
			if err != nil {
				var de *model.DomainError
				if !errors.As(err, &de) {
					de = model.ErrTokenInvalid
				}
				logger.Warn().
					Str("path", r.URL.Path).
					Str("code", de.Code).
					Msg("admin request rejected")
				writeJSONError(w, http.StatusUnauthorized, de.Message)
				return
			}

			if !admins.IsAdmin(identity) {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("identity", identity).
					Msg("token holder is not an admin")
				writeJSONError(w, http.StatusForbidden, model.ErrForbidden.Message)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
