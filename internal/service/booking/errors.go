package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("slot already booked")
	ErrPolicyViolation   = errors.New("policy violation")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrStateChanged      = errors.New("booking state changed")
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
	ErrProviderNotFound = fmt.Errorf("provider %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	// Store-level signals translated by the engine.
	errDuplicateSlot   = errors.New("duplicate active booking for slot")
	errVersionMismatch = errors.New("booking version mismatch")
)

// ValidationError is a client-correctable problem with the request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(reason, args...)}
}

// SlotAlreadyBookedError carries the slot the caller tried to take.
type SlotAlreadyBookedError struct {
	ProviderID uuid.UUID
	Date       availability.Date
	Slot       availability.Slot
}

func (e *SlotAlreadyBookedError) Error() string {
	return fmt.Sprintf("slot %s on %s is already booked", e.Slot, e.Date)
}

func (e *SlotAlreadyBookedError) Unwrap() error { return ErrConflict }

// WindowExpiredError is returned when a client acts after the cutoff.
type WindowExpiredError struct {
	Action string
	Cutoff time.Time
	Start  time.Time
}

func (e *WindowExpiredError) Error() string {
	return fmt.Sprintf("%s window expired at %s", e.Action, e.Cutoff.Format(time.RFC3339))
}

func (e *WindowExpiredError) Unwrap() error { return ErrPolicyViolation }

func transitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
