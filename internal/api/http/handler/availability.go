package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
)

type AvailabilityHandler struct {
	avail    availability.Service
	bookings booking.Service
}

func NewAvailabilityHandler(avail availability.Service, bookings booking.Service) *AvailabilityHandler {
	return &AvailabilityHandler{avail: avail, bookings: bookings}
}

// GET /providers/:providerID/slots?date=YYYY-MM-DD
func (h *AvailabilityHandler) Slots(c fiber.Ctx) error {
	providerID, valid := uuidParam(c, "providerID")
	if !valid {
		return badRequest(c, "invalid provider id")
	}
	date, err := availability.ParseDate(c.Query("date"))
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	slots, err := h.bookings.GetAvailableSlots(c.Context(), providerID, date)
	if err != nil {
		return writeError(c, err)
	}
	if slots == nil {
		slots = []availability.Slot{}
	}
	return ok(c, fiber.Map{
		"provider_id":      providerID,
		"appointment_date": date,
		"slots":            slots,
	})
}

// GET /providers/:providerID/availability
func (h *AvailabilityHandler) Get(c fiber.Ctx) error {
	providerID, valid := uuidParam(c, "providerID")
	if !valid {
		return badRequest(c, "invalid provider id")
	}

	t, err := h.avail.Template(c.Context(), providerID)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, t)
}

// PUT /providers/:providerID/availability
func (h *AvailabilityHandler) Put(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	providerID, valid := uuidParam(c, "providerID")
	if !valid {
		return badRequest(c, "invalid provider id")
	}
	// Providers may only edit their own schedule.
	if actor.Role != booking.RoleAdmin && actor.ID != providerID {
		return forbidden(c)
	}

	var t availability.Template
	if err := c.Bind().JSON(&t); err != nil {
		return badRequest(c, "invalid request body")
	}
	t.ProviderID = providerID

	saved, err := h.avail.SetTemplate(c.Context(), t)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, saved)
}
