package service

import (
	"context"

	"course-api/internal/domain"
)

type identityKey struct{}

// WithIdentity adjunta el usuario autenticado al contexto de la request.
func WithIdentity(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, identityKey{}, user)
}

// IdentityFromContext devuelve el usuario autenticado de la request, si existe.
func IdentityFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(identityKey{}).(domain.User)
	if !ok || user.ID == "" {
		return domain.User{}, false
	}
	return user, true
}
