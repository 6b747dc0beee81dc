package pipeline_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gaecom/arco-cli/internal/adapters/fs"
	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/gaecom/arco-cli/internal/core/ports/mocks"
	"github.com/gaecom/arco-cli/internal/engine/pipeline"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var importRe = regexp.MustCompile(`^@import "([^"]+)";$`)

// bundler inlines @import lines relative to the importing file.
type bundler struct{}

func (bundler) Compile(_ context.Context, req ports.CompileRequest) ([]byte, error) {
	data, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	for line := range strings.SplitSeq(string(data), "\n") {
		if m := importRe.FindStringSubmatch(line); m != nil {
			dep, err := os.ReadFile(filepath.Join(filepath.Dir(req.Path), filepath.FromSlash(m[1])))
			if err != nil {
				return nil, err
			}
			out.Write(dep)
			out.WriteString("\n")
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.Bytes(), nil
}

// squeezer drops all whitespace.
type squeezer struct{}

func (squeezer) Minify(_ context.Context, _ string, src []byte) ([]byte, error) {
	return []byte(strings.Join(strings.Fields(string(src)), "")), nil
}

type fixture struct {
	root    string
	project *domain.Project
	logger  *mocks.MockLogger
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// newFixture lays out a small component library under a temp dir.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()

	writeFiles(t, root, map[string]string{
		"components/button/style/index.css": `.btn { background: url("../../es/components/button/icon.png"); }`,
		"components/button/icon.png":        "PNG",
		"components/style/index.css":        "body { margin: 0; }",
		"components/style/theme.css":        ":root { --primary: blue; }",
	})

	return &fixture{
		root: root,
		project: &domain.Project{
			Root: root,
			Style: domain.StyleConfig{
				Base:      root,
				Entries:   []string{"components/**/style/index.css"},
				Namespace: domain.DefaultStyleNamespace,
				OutputExt: domain.DefaultOutputExt,
				Watch:     []domain.WatchGlob{{Pattern: "components/**/*.css", Base: root}},
				Output: domain.StyleOutput{
					ESDir:  filepath.Join(root, "es"),
					CJSDir: filepath.Join(root, "lib"),
					Dist: domain.DistOutput{
						Dir:              filepath.Join(root, "dist"),
						IndexFileName:    domain.DefaultIndexFileName,
						ArtifactFileName: domain.DefaultArtifactFileName,
					},
				},
			},
			Assets: domain.AssetConfig{
				Base:    root,
				Entries: []string{"components/**/*.png"},
				Output:  filepath.Join(root, "dist", "assets"),
			},
		},
		logger: mocks.NewMockLogger(gomock.NewController(t)),
	}
}

// pipeline returns a Pipeline over the real filesystem adapters.
func (f *fixture) pipeline(opts ...pipeline.Option) *pipeline.Pipeline {
	copier := fs.NewCopier()
	return pipeline.New(f.project, pipeline.Deps{
		Resolver: fs.NewResolver(fs.NewWalker()),
		Copier:   copier,
		Writer:   copier,
		Compiler: bundler{},
		Minifier: squeezer{},
		Logger:   f.logger,
	}, opts...)
}

func (f *fixture) path(rel string) string {
	return filepath.Join(f.root, filepath.FromSlash(rel))
}
