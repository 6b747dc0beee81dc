package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gaecom/arco-cli/internal/adapters/telemetry"
	"github.com/gaecom/arco-cli/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/mock/gomock"
)

// spanLog is a ports.Renderer recording span lifecycles.
type spanLog struct {
	mu       sync.Mutex
	plans    [][]string
	started  map[string]string // spanID -> name
	parents  map[string]string // spanID -> parentID
	finished map[string]error
}

func newSpanLog() *spanLog {
	return &spanLog{
		started:  make(map[string]string),
		parents:  make(map[string]string),
		finished: make(map[string]error),
	}
}

func (l *spanLog) Start(context.Context) error { return nil }
func (l *spanLog) Stop() error                 { return nil }

func (l *spanLog) OnPlanEmit(tasks []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.plans = append(l.plans, tasks)
}

func (l *spanLog) OnTaskStart(spanID, parentID, name string, _ time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.started[spanID] = name
	l.parents[spanID] = parentID
}

func (l *spanLog) OnTaskComplete(spanID string, _ time.Time, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.finished[spanID] = err
}

func (l *spanLog) idOf(name string) string {
	for id, n := range l.started {
		if n == name {
			return id
		}
	}
	return ""
}

func TestOTelTracer_ReportsNestedSpans(t *testing.T) {
	log := newSpanLog()
	tracer := telemetry.NewOTelTracer(telemetry.NewTracerProvider(log)).WithRenderer(log)
	t.Cleanup(func() { _ = tracer.Shutdown(context.Background()) })

	ctx, root := tracer.Start(context.Background(), "build")
	tracer.EmitPlan(ctx, []string{"copy-assets", "build-index"})

	_, child := tracer.Start(ctx, "copy-assets")
	child.SetAttribute("arco.files", 3)
	child.RecordError(errors.New("permission denied"))
	child.End()
	root.End()

	require.Len(t, log.started, 2)
	assert.Equal(t, [][]string{{"copy-assets", "build-index"}}, log.plans)

	rootID, childID := log.idOf("build"), log.idOf("copy-assets")
	assert.Empty(t, log.parents[rootID])
	assert.Equal(t, rootID, log.parents[childID])

	require.Contains(t, log.finished, childID)
	require.Error(t, log.finished[childID])
	assert.Equal(t, "permission denied", log.finished[childID].Error())
	assert.NoError(t, log.finished[rootID])
}

func TestOTelSpan_SetAttributeTypes(t *testing.T) {
	tracer := telemetry.NewOTelTracer(sdktrace.NewTracerProvider())

	_, span := tracer.Start(context.Background(), "attrs")
	span.SetAttribute("s", "v")
	span.SetAttribute("i", 1)
	span.SetAttribute("i64", int64(2))
	span.SetAttribute("b", true)
	span.SetAttribute("ss", []string{"a"})
	span.SetAttribute("other", 1.5)
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "noop")
	assert.NotNil(t, ctx)
	tracer.EmitPlan(ctx, []string{"a"})
	span.RecordError(errors.New("ignored"))
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestBridge_OnEndWithErrorStatusWithoutDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)

	renderer.EXPECT().OnTaskStart(gomock.Any(), "", "failing", gomock.Any())
	renderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).Do(
		func(_ string, _ time.Time, err error) {
			require.Error(t, err)
			assert.Equal(t, "task failed", err.Error())
		},
	)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(renderer)))
	_, span := tp.Tracer(telemetry.InstrumentationName).Start(context.Background(), "failing")
	span.SetStatus(codes.Error, "")
	span.End()
}

func TestBridge_FailureFallsBackToRecordedException(t *testing.T) {
	log := newSpanLog()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(log)))

	_, span := tp.Tracer(telemetry.InstrumentationName).Start(context.Background(), "compile-sources")
	span.RecordError(errors.New("unexpected token"))
	span.SetStatus(codes.Error, "")
	span.End()

	id := log.idOf("compile-sources")
	require.Error(t, log.finished[id])
	assert.Equal(t, "unexpected token", log.finished[id].Error())
}

func TestBridge_IgnoresForeignScopes(t *testing.T) {
	renderer := mocks.NewMockRenderer(gomock.NewController(t))

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(renderer)))
	_, span := tp.Tracer("go.opentelemetry.io/contrib/instrumentation/net/http").Start(context.Background(), "GET")
	span.End()
}

func TestBridge_NilRenderer(t *testing.T) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewBridge(nil)))
	_, span := tp.Tracer("test").Start(context.Background(), "ignored")
	span.End()

	b := telemetry.NewBridge(nil)
	require.NoError(t, b.ForceFlush(context.Background()))
	require.NoError(t, b.Shutdown(context.Background()))
}
