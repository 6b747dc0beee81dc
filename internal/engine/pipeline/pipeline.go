// Package pipeline implements the stylesheet build stages and composes them
// into the task graphs run by the scheduler.
package pipeline

import (
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
)

// Task names as they appear in spans and error metadata.
const (
	TaskFastBuild            = "fast-build"
	TaskFullBuild            = "build"
	TaskStyles               = "styles"
	TaskModules              = "modules"
	TaskCopyAssets           = "copy-assets"
	TaskMirrorWatchedSources = "mirror-watched-sources"
	TaskCompileSources       = "compile-sources"
	TaskStyleEntry           = "style-entry"
	TaskBuildIndex           = "build-index"
	TaskBuildArtifact        = "build-artifact"
)

// Deps are the collaborators of a Pipeline.
type Deps struct {
	Resolver ports.GlobResolver
	Copier   ports.FileCopier
	Writer   ports.OutputWriter
	Compiler ports.Compiler
	Minifier ports.Minifier
	Entries  ports.StyleEntryHandler
	Logger   ports.Logger
}

// Pipeline runs the build stages for one project. Stages hold no state
// between calls and may run concurrently.
type Pipeline struct {
	project       *domain.Project
	deps          Deps
	minifyEnabled bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMinifyDisabled turns off minification of the distributable regardless
// of build mode.
func WithMinifyDisabled(disabled bool) Option {
	return func(p *Pipeline) {
		p.minifyEnabled = !disabled
	}
}

// New creates a Pipeline for project.
func New(project *domain.Project, deps Deps, opts ...Option) *Pipeline {
	p := &Pipeline{
		project:       project,
		deps:          deps,
		minifyEnabled: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project returns the project the pipeline builds.
func (p *Pipeline) Project() *domain.Project {
	return p.project
}
