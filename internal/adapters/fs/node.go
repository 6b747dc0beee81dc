package fs

import (
	"context"

	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the unique identifier for the glob resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// CopierNodeID is the unique identifier for the file copier Graft node.
	CopierNodeID graft.ID = "adapter.fs.copier"
	// WriterNodeID is the unique identifier for the output writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.GlobResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.GlobResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	graft.Register(graft.Node[ports.FileCopier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileCopier, error) {
			return NewCopier(), nil
		},
	})

	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputWriter, error) {
			return NewCopier(), nil
		},
	})
}
