package availability

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidAvailability = errors.New("invalid availability")
	ErrInvalidTime         = errors.New("invalid time")
	ErrTemplateNotFound    = errors.New("availability template not found")
	ErrProviderNotFound    = errors.New("provider not found")
)

// InvalidAvailabilityError describes why a template was rejected.
type InvalidAvailabilityError struct {
	Day    *time.Weekday
	Reason string
}

func (e *InvalidAvailabilityError) Error() string {
	if e.Day != nil {
		return fmt.Sprintf("invalid availability on %s: %s", *e.Day, e.Reason)
	}
	return "invalid availability: " + e.Reason
}

func (e *InvalidAvailabilityError) Unwrap() error { return ErrInvalidAvailability }

func invalid(reason string, args ...any) error {
	return &InvalidAvailabilityError{Reason: fmt.Sprintf(reason, args...)}
}

func invalidOn(day time.Weekday, reason string, args ...any) error {
	return &InvalidAvailabilityError{Day: &day, Reason: fmt.Sprintf(reason, args...)}
}
