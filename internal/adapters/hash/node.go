package hash

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/volthaus/meshsweep/internal/core/ports"
)

// NodeID is the unique identifier for the run hasher Graft node.
const NodeID graft.ID = "adapter.run_hasher"

func init() {
	graft.Register(graft.Node[ports.RunHasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RunHasher, error) {
			return NewHasher(), nil
		},
	})
}
