package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

// CompileSources compiles every style entry once and writes the minified
// result to each module-format directory under the entry's relative path,
// with its extension replaced by the configured output extension.
//
// Compile and minify failures are logged and the file is skipped. Only write
// failures are returned.
func (p *Pipeline) CompileSources(ctx context.Context) error {
	style := p.project.Style
	dirs := style.Output.ModuleDirs()
	if len(dirs) == 0 || len(style.Entries) == 0 {
		return nil
	}

	matches, err := p.deps.Resolver.Resolve(style.Base, style.Entries)
	if err != nil {
		return err
	}

	var errs []error
	for _, src := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(style.Base, src)
		if err != nil {
			p.deps.Logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "path", src))
			continue
		}

		out, ok := p.compileFile(ctx, src, rel)
		if !ok {
			continue
		}

		target := replaceExt(rel, style.OutputExt)
		for _, dir := range dirs {
			if err := p.deps.Writer.WriteFile(filepath.Join(dir, target), out); err != nil {
				errs = append(errs, err)
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return errors.Join(domain.ErrOutputWriteFailed, err)
	}
	return nil
}

// compileFile compiles and minifies src. Failures are logged and reported as !ok.
func (p *Pipeline) compileFile(ctx context.Context, src, rel string) ([]byte, bool) {
	out, err := p.deps.Compiler.Compile(ctx, ports.CompileRequest{
		Path:    src,
		Options: p.project.Style.Compiler,
	})
	if err != nil {
		p.deps.Logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "path", rel))
		return nil, false
	}

	out, err = p.deps.Minifier.Minify(ctx, src, out)
	if err != nil {
		p.deps.Logger.Error(zerr.With(zerr.Wrap(err, domain.ErrMinifyFailed.Error()), "path", rel))
		return nil, false
	}
	return out, true
}

func replaceExt(path, ext string) string {
	if ext == "" {
		return path
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
