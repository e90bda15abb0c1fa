package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/volthaus/meshsweep/internal/adapters/config"  //nolint:depguard // Wired in app wiring
	"github.com/volthaus/meshsweep/internal/adapters/logger"  //nolint:depguard // Wired in app wiring
	"github.com/volthaus/meshsweep/internal/adapters/watcher" //nolint:depguard // Wired in app wiring
	"github.com/volthaus/meshsweep/internal/core/ports"
	"github.com/volthaus/meshsweep/internal/engine/sweep"
)

// ComponentsNodeID is the unique identifier for the components Graft node.
const ComponentsNodeID graft.ID = "app.components"

// Components bundles the fully wired application services. The CLI entry
// point resolves this single node and works with what it holds.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			sweep.NodeID,
			logger.NodeID,
			watcher.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.PlanLoader](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[*sweep.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			planWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, runner, log, planWatcher),
				Logger: log,
			}, nil
		},
	})
}
