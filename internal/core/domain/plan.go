package domain

import (
	"math"

	"go.trai.ch/zerr"
)

// Default plan values applied by the loader.
const (
	// DefaultObservable is collected when the plan does not name one.
	DefaultObservable = "terminal voltage"
	// DefaultWorkers runs the sweep sequentially.
	DefaultWorkers = 1
)

// SweepFileName is the default plan file name.
const SweepFileName = "sweep.yaml"

// Plan describes a full refinement sweep: which backend to use, the model and
// its parameters, the resolutions to run, and how to run them.
type Plan struct {
	Name        string
	Backend     string
	Model       string
	Command     []string
	Domains     []string
	Parameters  map[string]float64
	Span        TimeSpan
	Observable  string
	Resolutions []ResolutionSpec
	OnFailure   FailurePolicy
	Workers     int
	NoCache     bool
}

// Validate checks the whole plan before any run starts, so configuration
// errors surface immediately rather than mid-sweep. The required domains come
// from the backend the plan selects.
func (p *Plan) Validate(required []string) error {
	if len(p.Resolutions) == 0 {
		return ErrNoResolutions
	}
	if err := p.Span.Validate(); err != nil {
		return err
	}
	if p.Observable == "" {
		return ErrNoObservable
	}
	if p.Workers < 0 {
		return zerr.With(ErrInvalidWorkerCount, "workers", p.Workers)
	}
	for name, value := range p.Parameters {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return zerr.With(ErrInvalidParameter, "parameter", name)
		}
	}
	for i, spec := range p.Resolutions {
		if err := spec.Validate(required); err != nil {
			return zerr.With(err, "resolution_index", i)
		}
	}
	return nil
}
