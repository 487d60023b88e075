package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BookingMetrics holds the booking engine counters. A nil *BookingMetrics
// records nothing.
type BookingMetrics struct {
	created             metric.Int64Counter
	conflicts           metric.Int64Counter
	transitions         metric.Int64Counter
	integrationFailures metric.Int64Counter
}

// NewBookingMetrics registers the booking counters on the global meter provider.
func NewBookingMetrics() (*BookingMetrics, error) {
	meter := otel.Meter(tracerName)

	created, err := meter.Int64Counter("booking_created_total",
		metric.WithDescription("Bookings created"),
		metric.WithUnit("{booking}"))
	if err != nil {
		return nil, err
	}
	conflicts, err := meter.Int64Counter("booking_conflicts_total",
		metric.WithDescription("Booking attempts rejected because the slot was taken"),
		metric.WithUnit("{booking}"))
	if err != nil {
		return nil, err
	}
	transitions, err := meter.Int64Counter("booking_transitions_total",
		metric.WithDescription("Booking state transitions"),
		metric.WithUnit("{transition}"))
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("booking_integration_failures_total",
		metric.WithDescription("Failed calls to payment, video or notification collaborators"),
		metric.WithUnit("{call}"))
	if err != nil {
		return nil, err
	}

	return &BookingMetrics{
		created:             created,
		conflicts:           conflicts,
		transitions:         transitions,
		integrationFailures: failures,
	}, nil
}

func (m *BookingMetrics) Created(ctx context.Context) {
	if m == nil {
		return
	}
	m.created.Add(ctx, 1)
}

func (m *BookingMetrics) Conflict(ctx context.Context) {
	if m == nil {
		return
	}
	m.conflicts.Add(ctx, 1)
}

func (m *BookingMetrics) Transition(ctx context.Context, from, to string) {
	if m == nil {
		return
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

func (m *BookingMetrics) IntegrationFailure(ctx context.Context, collaborator, operation string) {
	if m == nil {
		return
	}
	m.integrationFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("collaborator", collaborator),
		attribute.String("operation", operation),
	))
}
