package sweep

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/volthaus/meshsweep/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"github.com/volthaus/meshsweep/internal/adapters/hash"      //nolint:depguard // Wired in engine wiring
	"github.com/volthaus/meshsweep/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/volthaus/meshsweep/internal/core/ports"
)

// NodeID is the unique identifier for the sweep runner Graft node.
const NodeID graft.ID = "engine.sweep"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hash.NodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			hasher, err := graft.Dep[ports.RunHasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.RunStore](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewRunner(hasher, store, tracer), nil
		},
	})
}
