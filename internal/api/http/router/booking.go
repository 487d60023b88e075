package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/internal/api/http/handler"
	"github.com/jasimarif/psychology-app/pkg/authorize"
)

func (r *Router) registerBookingRoutes(
	api fiber.Router,
	bh *handler.BookingHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	bookings := api.Group("/bookings", authRequired)

	bookings.Get("/", requirePerm(authorize.ResourceBooking, authorize.ActionList), bh.List)
	bookings.Post("/", requirePerm(authorize.ResourceBooking, authorize.ActionCreate), bh.Create)

	b := bookings.Group("/:id")
	b.Get("/", requirePerm(authorize.ResourceBooking, authorize.ActionRead), bh.Get)
	b.Patch("/cancel", requirePerm(authorize.ResourceBooking, authorize.ActionCancel), bh.Cancel)
	b.Patch("/reschedule", requirePerm(authorize.ResourceBooking, authorize.ActionReschedule), bh.Reschedule)
	b.Patch("/complete", requirePerm(authorize.ResourceBooking, authorize.ActionComplete), bh.Complete)
	b.Post("/checkout", requirePerm(authorize.ResourceBooking, authorize.ActionPay), bh.Checkout)
	b.Post("/refund", requirePerm(authorize.ResourceBooking, authorize.ActionRefund), bh.Refund)
}
