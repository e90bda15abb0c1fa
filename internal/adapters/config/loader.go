// Package config provides the sweep plan loader for meshsweep.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultBackend is selected when the plan does not name one.
const DefaultBackend = "analytic"

var _ ports.PlanLoader = (*Loader)(nil)

// Loader implements ports.PlanLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads a sweep plan from the given path, applies defaults, and returns
// a domain.Plan. Semantic validation happens later against the selected
// backend; Load only rejects what cannot be represented at all.
func (l *Loader) Load(path string) (*domain.Plan, error) {
	// #nosec G304 -- path is provided by the user invoking the sweep
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var sweepfile Sweepfile
	if err := yaml.Unmarshal(data, &sweepfile); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	policy, err := domain.ParseFailurePolicy(sweepfile.OnFailure)
	if err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		Name:        sweepfile.Name,
		Backend:     sweepfile.Backend,
		Model:       sweepfile.Model,
		Command:     sweepfile.Command,
		Domains:     sweepfile.Domains,
		Parameters:  sweepfile.Parameters,
		Span:        domain.TimeSpan{Start: sweepfile.Span.Start, End: sweepfile.Span.End},
		Observable:  sweepfile.Observable,
		Resolutions: toResolutions(sweepfile.Resolutions),
		OnFailure:   policy,
		Workers:     sweepfile.Workers,
	}

	l.applyDefaults(plan, path)

	return plan, nil
}

func (l *Loader) applyDefaults(plan *domain.Plan, path string) {
	if plan.Name == "" {
		plan.Name = filepath.Base(filepath.Dir(absPath(path)))
	}
	if plan.Backend == "" {
		plan.Backend = DefaultBackend
	}
	if plan.Observable == "" {
		plan.Observable = domain.DefaultObservable
	}
	if plan.Workers == 0 {
		plan.Workers = domain.DefaultWorkers
	}

	if plan.Backend == DefaultBackend && len(plan.Command) > 0 {
		l.Logger.Warn(fmt.Sprintf("'command' defined in %s has no effect with the %s backend", filepath.Base(path), DefaultBackend))
	}
}

func toResolutions(raw []map[string]int) []domain.ResolutionSpec {
	resolutions := make([]domain.ResolutionSpec, 0, len(raw))
	for _, entry := range raw {
		resolutions = append(resolutions, domain.ResolutionSpec(entry))
	}
	return resolutions
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
