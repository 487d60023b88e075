package email

import (
	"errors"
	"fmt"
)

// ErrDisabled is returned by Send when delivery is switched off in config.
var ErrDisabled = errors.New("email: delivery disabled")

// InvalidMessageError reports a message, or client setup, that cannot be
// delivered no matter how often it is retried.
type InvalidMessageError struct {
	Field  string
	Reason string
}

func (e *InvalidMessageError) Error() string {
	return fmt.Sprintf("email: invalid %s: %s", e.Field, e.Reason)
}

// SendError is an SMTP failure against the configured relay. Callers may
// retry it.
type SendError struct {
	Host string
	Port int
	Err  error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("email: send via %s:%d: %v", e.Host, e.Port, e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

func invalid(field, reason string) error {
	return &InvalidMessageError{Field: field, Reason: reason}
}
