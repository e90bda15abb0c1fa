package cas

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
)

// NodeID is the unique identifier for the run store Graft node.
const NodeID graft.ID = "adapter.run_store"

func init() {
	graft.Register(graft.Node[ports.RunStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RunStore, error) {
			path := filepath.Join(domain.StateDirName, domain.RunStoreFileName)
			return NewStore(path)
		},
	})
}
