package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/apierr"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
)

// Principal headers set by the transport gateway in front of the API.
// The core trusts them as-is; verifying the caller is that principal is
// the gateway's job.
const (
	HeaderPlayerID       = "X-Player-ID"
	HeaderPlayerUsername = "X-Player-Username"
	HeaderPlayerName     = "X-Player-Name"
)

type contextKey string

const principalContextKey contextKey = "principal"

// AdminChecker is the authorization predicate for privileged routes
type AdminChecker interface {
	IsAdmin(id model.PlayerID) bool
}

// Principal creates middleware requiring a principal id header
func Principal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := extractPrincipal(r)
			if !ok {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey, &principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin creates middleware restricting a route to the configured
// administrator. Must run after Principal.
func Admin(checker AdminChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := GetPrincipal(r.Context())
			if principal == nil {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			if !checker.IsAdmin(principal.ID) {
				apierr.WriteError(w, apierr.NewForbiddenError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractPrincipal reads the principal from the request headers
func extractPrincipal(r *http.Request) (model.Principal, bool) {
	raw := r.Header.Get(HeaderPlayerID)
	if raw == "" {
		return model.Principal{}, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return model.Principal{}, false
	}

	return model.Principal{
		ID:          model.PlayerID(id),
		Username:    r.Header.Get(HeaderPlayerUsername),
		DisplayName: r.Header.Get(HeaderPlayerName),
	}, true
}

// GetPrincipal returns the principal from the request context
func GetPrincipal(ctx context.Context) *model.Principal {
	principal, _ := ctx.Value(principalContextKey).(*model.Principal)
	return principal
}

// MustGetPrincipal returns the principal or panics
func MustGetPrincipal(ctx context.Context) *model.Principal {
	principal := GetPrincipal(ctx)
	if principal == nil {
		panic("no principal in context - principal middleware not applied?")
	}
	return principal
}
