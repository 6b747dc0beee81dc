package entry

import (
	"context"

	"github.com/gaecom/arco-cli/internal/adapters/fs"     //nolint:depguard // Wired in adapter wiring
	"github.com/gaecom/arco-cli/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the style entry handler Graft node.
const NodeID graft.ID = "adapter.entry"

func init() {
	graft.Register(graft.Node[ports.StyleEntryHandler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.ResolverNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.StyleEntryHandler, error) {
			resolver, err := graft.Dep[ports.GlobResolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, log), nil
		},
	})
}
