package pipeline

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/gaecom/arco-cli/internal/core/domain"
	"go.trai.ch/zerr"
)

// CopyAssets copies every asset entry match into the asset output directory,
// keeping its path relative to the asset base. It is a no-op without entries.
// A failing file does not stop the others; all failures are returned.
func (p *Pipeline) CopyAssets(ctx context.Context) error {
	assets := p.project.Assets
	if len(assets.Entries) == 0 || assets.Output == "" {
		return nil
	}

	matches, err := p.deps.Resolver.Resolve(assets.Base, assets.Entries)
	if err != nil {
		return err
	}

	var errs []error
	for _, src := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.copyRelative(src, assets.Base, assets.Output); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return errors.Join(domain.ErrCopyFailed, err)
	}
	return nil
}

// MirrorWatchedSources copies the matches of every watch pattern into each
// module-format directory, keeping paths relative to the pattern's base.
//
// Copy failures are recoverable: the rest of the styles series still runs.
func (p *Pipeline) MirrorWatchedSources(ctx context.Context) error {
	dirs := p.project.Style.Output.ModuleDirs()
	if len(dirs) == 0 {
		return nil
	}

	var errs []error
	for _, w := range p.project.Style.Watch {
		matches, err := p.deps.Resolver.Resolve(w.Base, []string{w.Pattern})
		if err != nil {
			return err
		}

		for _, src := range matches {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, dir := range dirs {
				if err := p.copyRelative(src, w.Base, dir); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return domain.Recoverable(errors.Join(domain.ErrCopyFailed, err))
	}
	return nil
}

func (p *Pipeline) copyRelative(src, base, outDir string) error {
	rel, err := filepath.Rel(base, src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "src", src)
	}
	return p.deps.Copier.Copy(src, filepath.Join(outDir, rel))
}
