// Package hash computes run input hashes for the sweep cache.
package hash

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
)

var _ ports.RunHasher = (*Hasher)(nil)

// Hasher computes a single hash over everything that determines a run's
// output. Map-valued inputs are hashed in sorted key order so the hash is
// independent of iteration order.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeRunHash hashes backend, model, parameters, resolution, span, and
// observable into a 16-character hex digest.
func (h *Hasher) ComputeRunHash(
	backend, model string,
	params map[string]float64,
	spec domain.ResolutionSpec,
	span domain.TimeSpan,
	observable string,
) string {
	digest := xxhash.New()

	_, _ = digest.WriteString(backend)
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(model)
	_, _ = digest.Write([]byte{0})

	h.hashParameters(params, digest)
	h.hashResolution(spec, digest)

	_, _ = digest.WriteString(formatFloat(span.Start))
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(formatFloat(span.End))
	_, _ = digest.Write([]byte{0})

	_, _ = digest.WriteString(observable)

	return fmt.Sprintf("%016x", digest.Sum64())
}

// hashParameters hashes parameter values in deterministic key order.
func (h *Hasher) hashParameters(params map[string]float64, digest *xxhash.Digest) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = digest.WriteString(k)
		_, _ = digest.Write([]byte{'='})
		_, _ = digest.WriteString(formatFloat(params[k]))
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0}) // Section separator
}

// hashResolution hashes point counts in deterministic domain order.
func (h *Hasher) hashResolution(spec domain.ResolutionSpec, digest *xxhash.Digest) {
	domainIDs := make([]string, 0, len(spec))
	for domainID := range spec {
		domainIDs = append(domainIDs, domainID)
	}
	sort.Strings(domainIDs)

	for _, domainID := range domainIDs {
		_, _ = digest.WriteString(domainID)
		_, _ = digest.Write([]byte{'='})
		_, _ = digest.WriteString(strconv.Itoa(spec[domainID]))
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})
}

// formatFloat renders a float exactly enough to round-trip, so equal inputs
// hash equal and nothing else does.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
