package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"
)

func TestInit_SignalsFollowConfig(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tests := []struct {
		name       string
		cfg        Config
		wantTracer bool
	}{
		{"nothing enabled", Config{ServiceName: "booking-api"}, false},
		{"tracing without collector", Config{ServiceName: "booking-api", Tracing: TracingConfig{Enabled: true, SampleRatio: 0.5}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Init(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("Init: %v", err)
			}
			if (p.TracerProvider != nil) != tt.wantTracer {
				t.Errorf("tracer provider installed = %v, want %v", p.TracerProvider != nil, tt.wantTracer)
			}
			if p.MeterProvider != nil {
				t.Error("meter provider installed with metrics disabled")
			}
			if err := p.Shutdown(context.Background()); err != nil {
				t.Errorf("Shutdown: %v", err)
			}
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(Config{ServiceName: "booking-api", ServiceVersion: "1.2.0", Environment: "staging"})
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}

	want := map[attribute.Key]string{
		semconv.ServiceNamespaceKey:          Namespace,
		semconv.ServiceNameKey:               "booking-api",
		semconv.ServiceVersionKey:            "1.2.0",
		semconv.DeploymentEnvironmentNameKey: "staging",
	}
	set := res.Set()
	for k, v := range want {
		got, ok := set.Value(k)
		if !ok || got.AsString() != v {
			t.Errorf("%s = %q, want %q", k, got.AsString(), v)
		}
	}
	if _, ok := set.Value(semconv.ServiceInstanceIDKey); !ok {
		t.Error("service.instance.id missing")
	}
}
