package telemetry

import (
	"context"

	"github.com/gaecom/arco-cli/internal/adapters/linear" //nolint:depguard // Wired in adapter wiring
	"github.com/gaecom/arco-cli/internal/core/ports"
	"github.com/grindlemire/graft"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.telemetry.tracer"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{linear.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(NewTracerProvider(renderer)).WithRenderer(renderer), nil
		},
	})
}
