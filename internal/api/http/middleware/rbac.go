package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/pkg/authorize"
)

// RequirePermission checks that the caller's role may perform action on
// resource. It runs after AuthRequired, which puts the claims on the request
// context. Ownership of the individual record is checked by the service.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		err := authorize.EnforceContext(c.Context(), auth, resource, action)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, authorize.ErrNoSubjectInContext):
			return fiber.ErrUnauthorized
		case errors.Is(err, authorize.ErrForbidden), errors.Is(err, authorize.ErrInvalidArgs):
			return fiber.ErrForbidden
		default:
			return err
		}
	}
}
