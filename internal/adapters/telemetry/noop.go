package telemetry

import "go.opentelemetry.io/otel/trace/noop"

// NewNoOpTracer returns a tracer whose spans record nothing.
func NewNoOpTracer() *OTelTracer {
	return NewOTelTracer(noop.NewTracerProvider())
}
