package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestBookingMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	m, err := NewBookingMetrics()
	if err != nil {
		t.Fatalf("NewBookingMetrics: %v", err)
	}

	ctx := context.Background()
	m.Created(ctx)
	m.Conflict(ctx)
	m.Conflict(ctx)
	m.Transition(ctx, "pending", "confirmed")
	m.IntegrationFailure(ctx, "video", "create_meeting")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[md.Name] += dp.Value
			}
		}
	}

	want := map[string]int64{
		"booking_created_total":              1,
		"booking_conflicts_total":            2,
		"booking_transitions_total":          1,
		"booking_integration_failures_total": 1,
	}
	for name, v := range want {
		if totals[name] != v {
			t.Errorf("%s = %d, want %d", name, totals[name], v)
		}
	}
}

func TestBookingMetrics_NilSafe(t *testing.T) {
	var m *BookingMetrics
	m.Created(context.Background())
	m.IntegrationFailure(context.Background(), "payment", "refund")
}
