package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

// BuildIndex writes the import index of all style entries to the dist
// directory. Entries under the style namespace come first; the rest keep
// discovery order. Nothing is written when no entry matches.
func (p *Pipeline) BuildIndex(_ context.Context) error {
	style := p.project.Style
	dist := style.Output.Dist
	if dist.Dir == "" || style.Output.ESDir == "" || len(style.Entries) == 0 {
		return nil
	}

	matches, err := p.deps.Resolver.Resolve(style.Base, style.Entries)
	if err != nil {
		return err
	}

	var index domain.ImportIndex
	for _, src := range matches {
		rel, err := filepath.Rel(style.Base, src)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrIndexPathFailed, err), "path", src)
		}

		importPath, err := filepath.Rel(dist.Dir, filepath.Join(style.Output.ESDir, rel))
		if err != nil {
			return zerr.With(errors.Join(domain.ErrIndexPathFailed, err), "path", src)
		}

		index.Add(filepath.ToSlash(importPath), inNamespace(filepath.ToSlash(rel), style.Namespace))
	}

	if index.Len() == 0 {
		return nil
	}
	return p.deps.Writer.WriteFile(dist.IndexPath(), []byte(index.String()))
}

// BuildArtifact compiles the import index into the distributable, points
// module-tree asset references at the asset output and minifies the result
// unless devMode is set or minification is disabled. A missing index is not
// an error.
func (p *Pipeline) BuildArtifact(ctx context.Context, devMode bool) error {
	dist := p.project.Style.Output.Dist
	if dist.Dir == "" {
		return nil
	}

	indexPath := dist.IndexPath()
	if _, err := os.Stat(indexPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrIndexReadFailed.Error()), "path", indexPath)
	}

	out, err := p.deps.Compiler.Compile(ctx, ports.CompileRequest{
		Path:    indexPath,
		Options: p.project.Style.Compiler,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "path", indexPath)
	}

	out, err = p.rewriteAssetPaths(out)
	if err != nil {
		return err
	}

	if !devMode && p.minifyEnabled {
		out, err = p.deps.Minifier.Minify(ctx, indexPath, out)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMinifyFailed.Error()), "path", indexPath)
		}
	}

	return p.deps.Writer.WriteFile(dist.ArtifactPath(), out)
}

// rewriteAssetPaths replaces every "(../)+<es>/" prefix, where <es> is the
// base name of the ESM directory, with the asset output directory relative to
// the dist directory.
func (p *Pipeline) rewriteAssetPaths(css []byte) ([]byte, error) {
	esDir := p.project.Style.Output.ESDir
	assetDir := p.project.Assets.Output
	if esDir == "" || assetDir == "" {
		return css, nil
	}

	target, err := filepath.Rel(p.project.Style.Output.Dist.Dir, assetDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", assetDir)
	}

	re := regexp.MustCompile(`(?:\.\./)+` + regexp.QuoteMeta(filepath.Base(esDir)) + `/`)
	return re.ReplaceAllLiteral(css, []byte(filepath.ToSlash(target)+"/")), nil
}

// StyleEntry runs the style entry handler ahead of compilation.
func (p *Pipeline) StyleEntry(ctx context.Context) error {
	if p.deps.Entries == nil {
		return nil
	}
	if err := p.deps.Entries.Prepare(ctx, p.project); err != nil {
		return zerr.Wrap(err, domain.ErrStyleEntryFailed.Error())
	}
	return nil
}

// inNamespace reports whether the slash-separated rel lies under namespace.
func inNamespace(rel, namespace string) bool {
	ns := strings.Trim(strings.TrimPrefix(filepath.ToSlash(namespace), "./"), "/")
	if ns == "" {
		return false
	}
	return rel == ns || strings.HasPrefix(rel, ns+"/")
}
