package hash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volthaus/meshsweep/internal/adapters/hash"
	"github.com/volthaus/meshsweep/internal/core/domain"
)

func baseInputs() (string, string, map[string]float64, domain.ResolutionSpec, domain.TimeSpan, string) {
	return "analytic",
		"spm",
		map[string]float64{"ocv": 3.8, "tau": 600},
		domain.ResolutionSpec{"neg": 8, "sep": 4, "pos": 8},
		domain.TimeSpan{Start: 0, End: 3600},
		"terminal voltage"
}

func TestComputeRunHash_Deterministic(t *testing.T) {
	h := hash.NewHasher()

	backend, model, params, spec, span, obs := baseInputs()
	first := h.ComputeRunHash(backend, model, params, spec, span, obs)
	second := h.ComputeRunHash(backend, model, params, spec, span, obs)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
}

func TestComputeRunHash_MapOrderIndependent(t *testing.T) {
	h := hash.NewHasher()

	backend, model, _, _, span, obs := baseInputs()

	// Same content, separately constructed maps.
	paramsA := map[string]float64{"ocv": 3.8, "tau": 600, "bias": 0.05}
	paramsB := map[string]float64{"bias": 0.05, "tau": 600, "ocv": 3.8}
	specA := domain.ResolutionSpec{"neg": 8, "sep": 4, "pos": 8}
	specB := domain.ResolutionSpec{"pos": 8, "neg": 8, "sep": 4}

	assert.Equal(t,
		h.ComputeRunHash(backend, model, paramsA, specA, span, obs),
		h.ComputeRunHash(backend, model, paramsB, specB, span, obs),
	)
}

func TestComputeRunHash_SensitiveToEveryInput(t *testing.T) {
	h := hash.NewHasher()

	backend, model, params, spec, span, obs := baseInputs()
	base := h.ComputeRunHash(backend, model, params, spec, span, obs)

	assert.NotEqual(t, base, h.ComputeRunHash("exec", model, params, spec, span, obs), "backend")
	assert.NotEqual(t, base, h.ComputeRunHash(backend, "dfn", params, spec, span, obs), "model")

	changedParams := map[string]float64{"ocv": 3.9, "tau": 600}
	assert.NotEqual(t, base, h.ComputeRunHash(backend, model, changedParams, spec, span, obs), "parameters")

	changedSpec := domain.ResolutionSpec{"neg": 16, "sep": 4, "pos": 8}
	assert.NotEqual(t, base, h.ComputeRunHash(backend, model, params, changedSpec, span, obs), "resolution")

	changedSpan := domain.TimeSpan{Start: 0, End: 7200}
	assert.NotEqual(t, base, h.ComputeRunHash(backend, model, params, spec, changedSpan, obs), "span")

	assert.NotEqual(t, base, h.ComputeRunHash(backend, model, params, spec, span, "current"), "observable")
}

func TestComputeRunHash_SeparatorsPreventCollisions(t *testing.T) {
	h := hash.NewHasher()

	_, model, params, spec, span, obs := baseInputs()

	// "ab"+"c" vs "a"+"bc" must not collide across field boundaries.
	assert.NotEqual(t,
		h.ComputeRunHash("ab", "c"+model, params, spec, span, obs),
		h.ComputeRunHash("a", "bc"+model, params, spec, span, obs),
	)
}
