package middleware

import (
	"context"
	"net/http"

	"tfxlab/internal/domain"
)

type sessionKey string

const identityKey sessionKey = "identity"

// SessionLoader reads the persisted identity, if any.
type SessionLoader interface {
	Load() (*domain.UserIdentity, error)
}

// Session resolves the current identity once per request and carries it in
// the request context. Handlers never reach for ambient session state; this
// context value is the only way in. A load failure is treated as signed-out.
func Session(sessions SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := sessions.Load()
			if err != nil || identity == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity attached by Session, or nil.
func IdentityFromContext(ctx context.Context) *domain.UserIdentity {
	if v, ok := ctx.Value(identityKey).(*domain.UserIdentity); ok {
		return v
	}
	return nil
}

// ContextWithIdentity is a test helper for handler-level tests.
func ContextWithIdentity(ctx context.Context, identity *domain.UserIdentity) context.Context {
	if identity == nil {
		return ctx
	}
	return context.WithValue(ctx, identityKey, identity)
}
