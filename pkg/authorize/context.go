package authorize

import (
	"context"
	"errors"

	"github.com/jasimarif/psychology-app/pkg/reqctx"
)

var ErrNoSubjectInContext = errors.New("no subject found in context")

// RoleFromContext returns the authenticated caller's role.
func RoleFromContext(ctx context.Context) (Role, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil || claims.GetRole() == "" {
		return "", ErrNoSubjectInContext
	}
	return Role(claims.GetRole()), nil
}

// EnforceContext checks the caller in ctx against object and action. It
// returns ErrNoSubjectInContext for an anonymous ctx and ErrForbidden when
// the role is denied.
func EnforceContext(ctx context.Context, auth IAuthorization, object Resource, action Action) error {
	role, err := RoleFromContext(ctx)
	if err != nil {
		return err
	}
	return auth.MustEnforce(ctx, role, object, action)
}
