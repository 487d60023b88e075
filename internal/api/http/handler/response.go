package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
)

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"data": data})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
}

func forbidden(c fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func conflict(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": msg})
}

func withDetails(c fiber.Ctx, status int, msg string, details fiber.Map) error {
	return c.Status(status).JSON(fiber.Map{"error": msg, "details": details})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// writeError maps domain errors onto HTTP responses.
func writeError(c fiber.Ctx, err error) error {
	var (
		slotErr   *booking.SlotAlreadyBookedError
		windowErr *booking.WindowExpiredError
	)

	switch {
	case errors.As(err, &slotErr):
		return withDetails(c, fiber.StatusConflict, err.Error(), fiber.Map{
			"provider_id":      slotErr.ProviderID,
			"appointment_date": slotErr.Date,
			"start_time":       slotErr.Slot.StartTime,
			"end_time":         slotErr.Slot.EndTime,
		})
	case errors.As(err, &windowErr):
		return withDetails(c, fiber.StatusUnprocessableEntity, err.Error(), fiber.Map{
			"action": windowErr.Action,
			"cutoff": windowErr.Cutoff.Format(time.RFC3339),
			"start":  windowErr.Start.Format(time.RFC3339),
		})
	case errors.Is(err, booking.ErrValidation),
		errors.Is(err, availability.ErrInvalidAvailability),
		errors.Is(err, availability.ErrInvalidTime):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrConflict),
		errors.Is(err, booking.ErrStateChanged),
		errors.Is(err, booking.ErrInvalidTransition):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrPolicyViolation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, availability.ErrTemplateNotFound),
		errors.Is(err, availability.ErrProviderNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrForbidden):
		return forbidden(c)
	case errors.Is(err, gateway.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gateway.ErrIntegration):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	default:
		slog.ErrorContext(c.Context(), "unhandled request error", "path", c.Path(), "error", err)
		return internalError(c)
	}
}
