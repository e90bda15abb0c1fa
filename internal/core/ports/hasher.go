package ports

import "github.com/volthaus/meshsweep/internal/core/domain"

// RunHasher computes the input hash identifying a single sweep run.
// Two runs with equal hashes are guaranteed equal inputs, which is what makes
// replaying a stored record sound for deterministic backends.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type RunHasher interface {
	// ComputeRunHash hashes everything that determines a run's output:
	// backend, model, parameters, resolution, span, and observable.
	ComputeRunHash(backend, model string, params map[string]float64, spec domain.ResolutionSpec, span domain.TimeSpan, observable string) string
}
