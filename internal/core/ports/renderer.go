package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for build progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer.
	Start(ctx context.Context) error

	// Stop signals the renderer to flush and stop accepting events.
	Stop() error

	// OnPlanEmit is called with the leaf task names of a run before it starts.
	OnPlanEmit(tasks []string)

	// OnTaskStart is called when a task begins execution.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)

	// OnTaskComplete is called when a task finishes execution.
	// err is nil if the task succeeded.
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
