package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
	"github.com/jasimarif/psychology-app/internal/service/gateway"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &booking.ValidationError{Field: "start_time", Reason: "not a slot"}, http.StatusBadRequest},
		{"invalid template", fmt.Errorf("set: %w", availability.ErrInvalidAvailability), http.StatusBadRequest},
		{"slot taken", &booking.SlotAlreadyBookedError{}, http.StatusConflict},
		{"window", &booking.WindowExpiredError{Action: "cancellation"}, http.StatusUnprocessableEntity},
		{"not found", booking.ErrBookingNotFound, http.StatusNotFound},
		{"no template", availability.ErrTemplateNotFound, http.StatusNotFound},
		{"forbidden", booking.ErrForbidden, http.StatusForbidden},
		{"state changed", booking.ErrStateChanged, http.StatusConflict},
		{"transition", fmt.Errorf("%w: cancelled -> confirmed", booking.ErrInvalidTransition), http.StatusConflict},
		{"unavailable", &gateway.IntegrationError{Collaborator: gateway.CollaboratorPayment, Operation: "checkout", Err: gateway.ErrUnavailable}, http.StatusServiceUnavailable},
		{"integration", &gateway.IntegrationError{Collaborator: gateway.CollaboratorPayment, Operation: "refund", Err: errors.New("card declined")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c fiber.Ctx) error { return writeError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			if err != nil {
				t.Fatalf("Test: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
