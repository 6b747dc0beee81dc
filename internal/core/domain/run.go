package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunKind distinguishes the one-shot build from a watch-triggered rebuild.
type RunKind string

const (
	// RunBuild is the full one-shot build.
	RunBuild RunKind = "build"
	// RunFast is the reduced build executed on startup of watch and on every trigger.
	RunFast RunKind = "fast"
)

// BuildRun is the context of a single execution of a build graph.
// It is discarded once the run completes.
type BuildRun struct {
	ID        string
	Kind      RunKind
	DevMode   bool
	StartedAt time.Time
}

// NewBuildRun returns a BuildRun with a fresh identifier.
func NewBuildRun(kind RunKind, devMode bool) BuildRun {
	return BuildRun{
		ID:        uuid.NewString(),
		Kind:      kind,
		DevMode:   devMode,
		StartedAt: time.Now(),
	}
}

// ShortID returns the first eight characters of the run id for log lines.
func (r BuildRun) ShortID() string {
	if len(r.ID) <= 8 {
		return r.ID
	}
	return r.ID[:8]
}
