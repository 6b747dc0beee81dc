package pipeline_test

import (
	"context"
	iofs "io/fs"
	"path/filepath"
	"testing"

	"github.com/gaecom/arco-cli/internal/adapters/telemetry"
	"github.com/gaecom/arco-cli/internal/engine/pipeline"
	"github.com/gaecom/arco-cli/internal/engine/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastGraph_Leaves(t *testing.T) {
	p := newFixture(t).pipeline()

	assert.Equal(t, []string{
		pipeline.TaskCopyAssets,
		pipeline.TaskMirrorWatchedSources,
		pipeline.TaskBuildIndex,
		pipeline.TaskBuildArtifact,
	}, scheduler.LeafNames(p.FastGraph()))
}

func TestFullGraph_Leaves(t *testing.T) {
	p := newFixture(t).pipeline()

	assert.Equal(t, []string{
		pipeline.TaskCopyAssets,
		pipeline.TaskStyleEntry,
		pipeline.TaskMirrorWatchedSources,
		pipeline.TaskCompileSources,
		pipeline.TaskBuildIndex,
		pipeline.TaskBuildArtifact,
	}, scheduler.LeafNames(p.FullGraph(false)))
}

func TestFullGraph_Run(t *testing.T) {
	f := newFixture(t)
	sched := scheduler.NewScheduler(telemetry.NewNoOpTracer())

	require.NoError(t, sched.Run(context.Background(), f.pipeline().FullGraph(false)))

	assert.FileExists(t, f.path("es/components/style/theme.css"))
	assert.FileExists(t, f.path("lib/components/button/style/index.css"))
	assert.Equal(t, "PNG", readFile(t, f.path("dist/assets/components/button/icon.png")))

	artifact := readFile(t, f.path("dist/index.min.css"))
	assert.Contains(t, artifact, `url("assets/components/button/icon.png")`)
	assert.NotContains(t, artifact, " ")
}

func TestFullGraph_ModuleTreesHoldCompiledEntries(t *testing.T) {
	f := newFixture(t)
	sched := scheduler.NewScheduler(telemetry.NewNoOpTracer())

	for range 3 {
		require.NoError(t, sched.Run(context.Background(), f.pipeline().FullGraph(false)))

		assert.Equal(t, "body{margin:0;}", readFile(t, f.path("es/components/style/index.css")))
		assert.Equal(t,
			`.btn{background:url("../../es/components/button/icon.png");}`,
			readFile(t, f.path("es/components/button/style/index.css")),
		)
		assert.Equal(t, ":root { --primary: blue; }", readFile(t, f.path("es/components/style/theme.css")))

		var compared int
		require.NoError(t, filepath.WalkDir(f.path("es"), func(path string, d iofs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			rel, err := filepath.Rel(f.path("es"), path)
			require.NoError(t, err)
			assert.Equal(t, readFile(t, path), readFile(t, f.path(filepath.Join("lib", rel))), rel)
			compared++
			return nil
		}))
		assert.Equal(t, 3, compared)
	}
}

func TestFastGraph_RunUnminified(t *testing.T) {
	f := newFixture(t)
	sched := scheduler.NewScheduler(telemetry.NewNoOpTracer())

	require.NoError(t, sched.Run(context.Background(), f.pipeline().FastGraph()))

	artifact := readFile(t, f.path("dist/index.min.css"))
	assert.Contains(t, artifact, `body { margin: 0; }`)
	assert.Equal(t,
		readFile(t, f.path("components/button/style/index.css")),
		readFile(t, f.path("es/components/button/style/index.css")),
	)
}
