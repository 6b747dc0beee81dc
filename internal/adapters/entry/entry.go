// Package entry provides the default style entry handler.
package entry

import (
	"context"
	"fmt"

	"github.com/gaecom/arco-cli/internal/core/domain"
	"github.com/gaecom/arco-cli/internal/core/ports"
)

var _ ports.StyleEntryHandler = (*Handler)(nil)

// Handler checks that the style entries of a project resolve and reports
// how many will be compiled. It generates no files.
type Handler struct {
	resolver ports.GlobResolver
	logger   ports.Logger
}

// New creates a new Handler.
func New(resolver ports.GlobResolver, logger ports.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// Prepare implements ports.StyleEntryHandler.
func (h *Handler) Prepare(ctx context.Context, project *domain.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	style := project.Style
	if len(style.Entries) == 0 {
		h.logger.Warn("no style entries configured")
		return nil
	}

	matches, err := h.resolver.Resolve(style.Base, style.Entries)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		h.logger.Warn("style entries matched no files")
		return nil
	}
	h.logger.Info(fmt.Sprintf("found %d style entries", len(matches)))
	return nil
}
