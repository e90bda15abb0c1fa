// Package domain contains the core domain models for mesh refinement sweeps.
package domain

import (
	"maps"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// ResolutionSpec maps a spatial domain identifier to its mesh point count.
// A sweep runs the same model once per spec, varying only these counts.
type ResolutionSpec map[string]int

// Validate checks that every required domain is present and that all point
// counts are strictly positive.
func (r ResolutionSpec) Validate(required []string) error {
	for domainID, points := range r {
		if points <= 0 {
			return zerr.With(zerr.With(ErrInvalidPointCount, "domain", domainID), "points", points)
		}
	}
	for _, domainID := range required {
		if _, ok := r[domainID]; !ok {
			return zerr.With(ErrMissingDomain, "domain", domainID)
		}
	}
	return nil
}

// Key returns a canonical label for the spec with domains in sorted order,
// e.g. "neg=8,pos=8,sep=4". It is stable across map iteration order and is
// used for hashing, tracing, and display.
func (r ResolutionSpec) Key() string {
	domainIDs := make([]string, 0, len(r))
	for domainID := range r {
		domainIDs = append(domainIDs, domainID)
	}
	sort.Strings(domainIDs)

	parts := make([]string, len(domainIDs))
	for i, domainID := range domainIDs {
		parts[i] = domainID + "=" + strconv.Itoa(r[domainID])
	}
	return strings.Join(parts, ",")
}

// Clone returns an independent copy of the spec.
func (r ResolutionSpec) Clone() ResolutionSpec {
	if r == nil {
		return nil
	}
	out := make(ResolutionSpec, len(r))
	maps.Copy(out, r)
	return out
}
