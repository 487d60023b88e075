package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
)

type BookingHandler struct {
	svc booking.Service
}

func NewBookingHandler(svc booking.Service) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type createBookingBody struct {
	ProviderID uuid.UUID          `json:"provider_id"`
	Date       availability.Date  `json:"appointment_date"`
	StartTime  availability.Clock `json:"start_time"`
	EndTime    availability.Clock `json:"end_time"`
	Notes      string             `json:"notes"`
}

type rescheduleBody struct {
	Date      availability.Date  `json:"appointment_date"`
	StartTime availability.Clock `json:"start_time"`
	EndTime   availability.Clock `json:"end_time"`
}

type cancelBody struct {
	Reason string `json:"reason"`
}

// POST /bookings
func (h *BookingHandler) Create(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body createBookingBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.ProviderID == uuid.Nil {
		return badRequest(c, "provider_id is required")
	}

	b, err := h.svc.CreateBooking(c.Context(), actor, booking.CreateRequest{
		ProviderID: body.ProviderID,
		Date:       body.Date,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		Notes:      body.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return created(c, b)
}

// GET /bookings
func (h *BookingHandler) List(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		UserID     string `query:"user_id"`
		ProviderID string `query:"provider_id"`
		Status     string `query:"status"`
		From       string `query:"from"`
		To         string `query:"to"`
		Page       int    `query:"page"`
		PerPage    int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	f := booking.ListFilter{Page: q.Page, PerPage: q.PerPage}
	if q.UserID != "" {
		id, err := uuid.Parse(q.UserID)
		if err != nil {
			return badRequest(c, "invalid user_id")
		}
		f.UserID = &id
	}
	if q.ProviderID != "" {
		id, err := uuid.Parse(q.ProviderID)
		if err != nil {
			return badRequest(c, "invalid provider_id")
		}
		f.ProviderID = &id
	}
	if q.Status != "" {
		s := booking.Status(q.Status)
		if !s.Valid() {
			return badRequest(c, "invalid status")
		}
		f.Status = &s
	}
	if q.From != "" {
		d, err := availability.ParseDate(q.From)
		if err != nil {
			return badRequest(c, "invalid from date")
		}
		f.From = d
	}
	if q.To != "" {
		d, err := availability.ParseDate(q.To)
		if err != nil {
			return badRequest(c, "invalid to date")
		}
		f.To = d
	}

	list, err := h.svc.ListBookings(c.Context(), actor, f)
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []booking.Booking{}
	}
	return ok(c, list)
}

// GET /bookings/:id
func (h *BookingHandler) Get(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := uuidParam(c, "id")
	if !valid {
		return badRequest(c, "invalid booking id")
	}

	b, err := h.svc.GetBooking(c.Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, b)
}

// PATCH /bookings/:id/cancel
func (h *BookingHandler) Cancel(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := uuidParam(c, "id")
	if !valid {
		return badRequest(c, "invalid booking id")
	}

	var body cancelBody
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	b, err := h.svc.CancelBooking(c.Context(), actor, id, body.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, b)
}

// PATCH /bookings/:id/reschedule
func (h *BookingHandler) Reschedule(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := uuidParam(c, "id")
	if !valid {
		return badRequest(c, "invalid booking id")
	}

	var body rescheduleBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	b, err := h.svc.RescheduleBooking(c.Context(), actor, id, booking.RescheduleRequest{
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, b)
}

// PATCH /bookings/:id/complete
func (h *BookingHandler) Complete(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := uuidParam(c, "id")
	if !valid {
		return badRequest(c, "invalid booking id")
	}

	b, err := h.svc.CompleteBooking(c.Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, b)
}

// POST /bookings/:id/checkout
func (h *BookingHandler) Checkout(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := uuidParam(c, "id")
	if !valid {
		return badRequest(c, "invalid booking id")
	}

	co, err := h.svc.StartCheckout(c.Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, fiber.Map{
		"session_id":   co.SessionID,
		"redirect_url": co.RedirectURL,
	})
}

// POST /bookings/:id/refund
func (h *BookingHandler) Refund(c fiber.Ctx) error {
	actor, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, valid := uuidParam(c, "id")
	if !valid {
		return badRequest(c, "invalid booking id")
	}

	b, err := h.svc.RefundBooking(c.Context(), actor, id)
	if err != nil {
		return writeError(c, err)
	}
	return ok(c, b)
}
