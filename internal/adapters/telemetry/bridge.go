package telemetry

import (
	"context"
	"errors"

	"github.com/gaecom/arco-cli/internal/core/ports"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var _ sdktrace.SpanProcessor = (*Bridge)(nil)

const exceptionMessageKey = attribute.Key("exception.message")

// Bridge is an sdktrace.SpanProcessor that turns the scheduler's task spans
// into Renderer lifecycle calls. Spans of other instrumentation scopes sharing
// the provider are ignored.
type Bridge struct {
	renderer ports.Renderer
}

// NewBridge returns a new Bridge. A nil renderer discards everything.
func NewBridge(renderer ports.Renderer) *Bridge {
	return &Bridge{renderer: renderer}
}

// OnStart reports a task span as a started task under its parent task.
func (b *Bridge) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	if !b.tracks(s) {
		return
	}

	var parentID string
	if p := trace.SpanFromContext(parent).SpanContext(); p.IsValid() {
		parentID = p.SpanID().String()
	}

	b.renderer.OnTaskStart(s.SpanContext().SpanID().String(), parentID, s.Name(), s.StartTime())
}

// OnEnd reports a task span as completed, or as failed when its status is Error.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !b.tracks(s) {
		return
	}
	b.renderer.OnTaskComplete(s.SpanContext().SpanID().String(), s.EndTime(), taskError(s))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(context.Context) error { return nil }

// Shutdown does nothing.
func (b *Bridge) Shutdown(context.Context) error { return nil }

func (b *Bridge) tracks(s sdktrace.ReadOnlySpan) bool {
	return b.renderer != nil &&
		s.SpanContext().IsValid() &&
		s.InstrumentationScope().Name == InstrumentationName
}

// taskError returns the failure of a span with an Error status: its status
// description, else the message of its last recorded exception.
func taskError(s sdktrace.ReadOnlySpan) error {
	status := s.Status()
	if status.Code != codes.Error {
		return nil
	}
	if status.Description != "" {
		return errors.New(status.Description)
	}

	events := s.Events()
	for i := len(events) - 1; i >= 0; i-- {
		for _, kv := range events[i].Attributes {
			if kv.Key == exceptionMessageKey && kv.Value.AsString() != "" {
				return errors.New(kv.Value.AsString())
			}
		}
	}
	return errors.New("task failed")
}
