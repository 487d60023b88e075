package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
)

// PaymentWebhookVerifier authenticates a raw payment-provider webhook.
type PaymentWebhookVerifier interface {
	ParseWebhook(payload []byte, signature string) (*gateway.PaymentEvent, error)
}

type WebhookHandler struct {
	verifier PaymentWebhookVerifier
	svc      booking.Service
}

func NewWebhookHandler(verifier PaymentWebhookVerifier, svc booking.Service) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, svc: svc}
}

// POST /webhooks/stripe
func (h *WebhookHandler) Stripe(c fiber.Ctx) error {
	if h.verifier == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "payments are not configured"})
	}

	ev, err := h.verifier.ParseWebhook(c.Body(), c.Get("Stripe-Signature"))
	switch {
	case errors.Is(err, gateway.ErrInvalidSignature):
		return badRequest(c, "invalid signature")
	case errors.Is(err, gateway.ErrIgnoredEvent):
		// Acknowledge so the provider stops retrying.
		slog.DebugContext(c.Context(), "stripe webhook ignored", "reason", err)
		return ok(c, fiber.Map{"received": true})
	case err != nil:
		return badRequest(c, err.Error())
	}

	b, err := h.svc.ConfirmBooking(c.Context(), booking.PaymentCompleted{
		BookingID:  ev.BookingID,
		PaymentRef: ev.PaymentReference,
	})
	if errors.Is(err, booking.ErrInvalidTransition) {
		// The money is captured but the booking was cancelled or completed in
		// the meantime. Retrying cannot change that, so acknowledge the event.
		slog.WarnContext(c.Context(), "payment received for inactive booking, refund needed",
			"event_id", ev.EventID, "booking_id", ev.BookingID,
			"payment_ref", ev.PaymentReference, "error", err)
		return ok(c, fiber.Map{"received": true, "booking_id": ev.BookingID, "refund_required": true})
	}
	if err != nil {
		slog.WarnContext(c.Context(), "payment confirmation failed",
			"event_id", ev.EventID, "booking_id", ev.BookingID, "error", err)
		return writeError(c, err)
	}

	slog.InfoContext(c.Context(), "booking confirmed by payment", "event_id", ev.EventID, "booking_id", b.ID)
	return ok(c, fiber.Map{"received": true, "booking_id": b.ID, "status": b.Status})
}
