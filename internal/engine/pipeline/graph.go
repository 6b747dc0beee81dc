package pipeline

import (
	"context"

	"github.com/gaecom/arco-cli/internal/core/domain"
)

// FastGraph returns the graph run on watch startup and on every trigger.
// It skips module compilation and always builds an unminified artifact.
func (p *Pipeline) FastGraph() domain.Task {
	return domain.NewParallel(TaskFastBuild,
		domain.NewLeaf(TaskCopyAssets, p.CopyAssets),
		domain.NewSeries(TaskStyles,
			domain.NewLeaf(TaskMirrorWatchedSources, p.MirrorWatchedSources),
			domain.NewLeaf(TaskBuildIndex, p.BuildIndex),
			domain.NewLeaf(TaskBuildArtifact, p.artifactOp(true)),
		),
	)
}

// FullGraph returns the one-shot build graph.
//
// Mirrored sources and compiled entries share paths when the output extension
// equals the source extension, so compilation runs after the mirror and its
// output is the one left in both module trees.
func (p *Pipeline) FullGraph(devMode bool) domain.Task {
	return domain.NewParallel(TaskFullBuild,
		domain.NewLeaf(TaskCopyAssets, p.CopyAssets),
		domain.NewSeries(TaskStyles,
			domain.NewLeaf(TaskStyleEntry, p.StyleEntry),
			domain.NewSeries(TaskModules,
				domain.NewLeaf(TaskMirrorWatchedSources, p.MirrorWatchedSources),
				domain.NewLeaf(TaskCompileSources, p.CompileSources),
			),
			domain.NewLeaf(TaskBuildIndex, p.BuildIndex),
			domain.NewLeaf(TaskBuildArtifact, p.artifactOp(devMode)),
		),
	)
}

func (p *Pipeline) artifactOp(devMode bool) domain.Operation {
	return func(ctx context.Context) error {
		return p.BuildArtifact(ctx, devMode)
	}
}
