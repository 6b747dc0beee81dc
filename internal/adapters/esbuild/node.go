package esbuild

import (
	"context"

	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// CompilerNodeID is the unique identifier for the compiler Graft node.
	CompilerNodeID graft.ID = "adapter.esbuild.compiler"
	// MinifierNodeID is the unique identifier for the minifier Graft node.
	MinifierNodeID graft.ID = "adapter.esbuild.minifier"
)

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Compiler, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Minifier]{
		ID:        MinifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Minifier, error) {
			return New(), nil
		},
	})
}
