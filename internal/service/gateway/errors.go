package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrIntegration matches every failed collaborator call.
	ErrIntegration = errors.New("integration failure")
	// ErrUnavailable means the collaborator is not configured or is switched off.
	ErrUnavailable = errors.New("collaborator unavailable")

	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrIgnoredEvent     = errors.New("webhook event ignored")
)

type Collaborator string

const (
	CollaboratorPayment      Collaborator = "payment"
	CollaboratorVideo        Collaborator = "video"
	CollaboratorNotification Collaborator = "notification"
)

// IntegrationError wraps a failed call to an external collaborator.
type IntegrationError struct {
	Collaborator Collaborator
	Operation    string
	Err          error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Collaborator, e.Operation, e.Err)
}

func (e *IntegrationError) Unwrap() []error { return []error{ErrIntegration, e.Err} }
