package app_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gaecom/arco-cli/internal/adapters/config"
	"github.com/gaecom/arco-cli/internal/adapters/entry"
	"github.com/gaecom/arco-cli/internal/adapters/esbuild"
	"github.com/gaecom/arco-cli/internal/adapters/fs"
	"github.com/gaecom/arco-cli/internal/adapters/telemetry"
	"github.com/gaecom/arco-cli/internal/app"
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/engine/pipeline"
	"github.com/gaecom/arco-cli/internal/engine/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arcofile = `version: "1"
style:
  entries: ["components/**/style/index.css"]
  outputExt: .bundle.css
  watch:
    - pattern: "components/**/*.css"
  output:
    es: es
    cjs: lib
    dist:
      dir: dist
      artifact: arco.css
assets:
  entries: ["components/**/*.png"]
  output: dist/assets
`

// logRecorder is a ports.Logger keeping every line in memory.
type logRecorder struct {
	mu     sync.Mutex
	infos  []string
	warns  []string
	errors []error
}

func (l *logRecorder) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *logRecorder) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *logRecorder) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, err)
}

func (l *logRecorder) infoCount(match func(string) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, msg := range l.infos {
		if match(msg) {
			n++
		}
	}
	return n
}

func (l *logRecorder) warnCount(match func(string) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, msg := range l.warns {
		if match(msg) {
			n++
		}
	}
	return n
}

func (l *logRecorder) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

func clearBuildEnv(t *testing.T) {
	t.Helper()
	t.Setenv(domain.EnvBuildMode, "")
	t.Setenv(domain.EnvDisableMinify, "")
}

func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		domain.ConfigFileName:                  arcofile,
		"components/style/index.css":           ".arco { color: red; }\n",
		"components/button/style/token.css":    ".arco-btn { padding: 4px; }\n",
		"components/button/style/index.css":    "@import \"./token.css\";\n.arco-btn { color: blue; }\n",
		"components/button/icon.png":           "png",
		"components/button/style/README.md":    "not watched",
		"components/button/style/ignored.less": "not an entry",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func newApp(t *testing.T, root string, w ports.Watcher, deps pipeline.Deps) (*app.App, *logRecorder) {
	t.Helper()
	log := &logRecorder{}

	resolver := fs.NewResolver(fs.NewWalker())
	copier := fs.NewCopier()
	if deps.Resolver == nil {
		deps.Resolver = resolver
	}
	if deps.Copier == nil {
		deps.Copier = copier
	}
	if deps.Writer == nil {
		deps.Writer = copier
	}
	if deps.Compiler == nil {
		deps.Compiler = esbuild.New()
	}
	if deps.Minifier == nil {
		deps.Minifier = esbuild.New()
	}
	if deps.Entries == nil {
		deps.Entries = entry.New(resolver, log)
	}

	a := app.New(
		config.NewLoader(log),
		scheduler.NewScheduler(telemetry.NewNoOpTracer()),
		w,
		log,
		deps,
	).WithWorkDir(root)
	return a, log
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestBuild_WritesEveryOutput(t *testing.T) {
	clearBuildEnv(t)
	root := writeProject(t)
	a, log := newApp(t, root, nil, pipeline.Deps{})

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
	assert.Zero(t, log.errorCount())

	esm := readFile(t, root, "es/components/button/style/index.bundle.css")
	assert.Contains(t, esm, "padding: 4px")
	assert.Equal(t, esm, readFile(t, root, "lib/components/button/style/index.bundle.css"))
	assert.Equal(t,
		readFile(t, root, "components/button/style/index.css"),
		readFile(t, root, "es/components/button/style/index.css"),
	)

	assert.Equal(t,
		"@import \"../es/components/style/index.css\";\n@import \"../es/components/button/style/index.css\";",
		readFile(t, root, "dist/index.css"),
	)

	artifact := readFile(t, root, "dist/arco.css")
	assert.Contains(t, artifact, ".arco{color:red}")
	assert.Contains(t, artifact, "padding:4px")
	assert.NotContains(t, artifact, "../es/")

	assert.Equal(t, "png", readFile(t, root, "dist/assets/components/button/icon.png"))
	assert.NoFileExists(t, filepath.Join(root, "es/components/button/style/README.md"))
	assert.NoFileExists(t, filepath.Join(root, "lib/components/button/style/ignored.less"))
}

func TestBuild_DevModeLeavesArtifactUnminified(t *testing.T) {
	clearBuildEnv(t)
	root := writeProject(t)
	a, _ := newApp(t, root, nil, pipeline.Deps{})

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{Dev: true}))
	assert.Contains(t, readFile(t, root, "dist/arco.css"), "color: red")
}

func TestBuild_DevModeFromEnvFile(t *testing.T) {
	clearBuildEnv(t)
	require.NoError(t, os.Unsetenv(domain.EnvBuildMode))
	root := writeProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.EnvFileName), []byte("ARCO_ENV=development\n"), 0o600))
	a, _ := newApp(t, root, nil, pipeline.Deps{})

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
	assert.Contains(t, readFile(t, root, "dist/arco.css"), "color: red")
}

func TestBuild_StageFailureIsLoggedNotReturned(t *testing.T) {
	clearBuildEnv(t)
	root := writeProject(t)
	// A file where the asset output directory should be makes every asset copy fail.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist/assets"), nil, 0o600))
	a, log := newApp(t, root, nil, pipeline.Deps{})

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
	assert.Equal(t, 1, log.errorCount())

	// The style chain is unaffected by the failing sibling.
	assert.FileExists(t, filepath.Join(root, "dist/arco.css"))
}

func TestBuild_StrictReturnsFailure(t *testing.T) {
	clearBuildEnv(t)
	root := writeProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist/assets"), nil, 0o600))
	a, _ := newApp(t, root, nil, pipeline.Deps{})

	err := a.Build(context.Background(), app.BuildOptions{Strict: true})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorIs(t, err, domain.ErrCopyFailed)
}

func TestBuild_ConfigErrors(t *testing.T) {
	clearBuildEnv(t)
	a, _ := newApp(t, t.TempDir(), nil, pipeline.Deps{})

	err := a.Build(context.Background(), app.BuildOptions{ConfigPath: "missing.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestBuild_ZeroMatchesCompletes(t *testing.T) {
	clearBuildEnv(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName), []byte(arcofile), 0o600))
	a, log := newApp(t, root, nil, pipeline.Deps{})

	require.NoError(t, a.Build(context.Background(), app.BuildOptions{}))
	assert.Zero(t, log.errorCount())
	assert.NoDirExists(t, filepath.Join(root, "dist"))
	assert.Positive(t, log.infoCount(func(msg string) bool { return strings.HasPrefix(msg, "build ") }))
}
