// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/volthaus/meshsweep/internal/adapters/cas"
	_ "github.com/volthaus/meshsweep/internal/adapters/config"
	_ "github.com/volthaus/meshsweep/internal/adapters/hash"
	_ "github.com/volthaus/meshsweep/internal/adapters/logger"
	_ "github.com/volthaus/meshsweep/internal/adapters/telemetry"
	_ "github.com/volthaus/meshsweep/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "github.com/volthaus/meshsweep/internal/app"
	_ "github.com/volthaus/meshsweep/internal/engine/sweep"
)
