package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/internal/api/http/handler"
	"github.com/jasimarif/psychology-app/pkg/authorize"
)

func (r *Router) registerAvailabilityRoutes(
	api fiber.Router,
	ah *handler.AvailabilityHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	providers := api.Group("/providers/:providerID")

	// public
	providers.Get("/slots", ah.Slots)
	providers.Get("/availability", ah.Get)

	providers.Put("/availability",
		authRequired,
		requirePerm(authorize.ResourceAvailability, authorize.ActionUpdate),
		ah.Put,
	)
}
