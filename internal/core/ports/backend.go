// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/volthaus/meshsweep/internal/core/domain"
)

// SimulationBackend builds and solves battery models at a given mesh
// resolution. It is the external capability the sweep engine is polymorphic
// over: the engine never sees discretization or solver internals.
//
// Build and Solve must be pure with respect to the engine's state. No hidden
// cross-call memoization is required or assumed.
//
//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type SimulationBackend interface {
	// Name identifies the backend implementation (e.g. "analytic", "exec").
	Name() string

	// RequiredDomains lists the spatial domain identifiers every
	// ResolutionSpec must cover for this backend.
	RequiredDomains() []string

	// Build compiles the model and parameters into a Runnable discretized at
	// the given resolution. Each call constructs an isolated Runnable.
	Build(ctx context.Context, model string, params map[string]float64, spec domain.ResolutionSpec) (Runnable, error)
}

// Runnable is a fully discretized model ready to be solved.
type Runnable interface {
	// Solve integrates the model over the given span and returns the solution.
	// Iteration limits and convergence handling are the backend's own concern.
	Solve(ctx context.Context, span domain.TimeSpan) (Solution, error)
}

// Solution exposes the named output series of a completed solve.
type Solution interface {
	// Series returns the output series for the named observable,
	// or false if the backend did not produce it.
	Series(name string) (domain.OutputSeries, bool)

	// Observables lists the names available on this solution.
	Observables() []string
}
