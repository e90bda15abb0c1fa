// Package analytic provides the built-in reference simulation backend.
//
// It models a single-particle cell relaxing toward its open-circuit voltage
// with a closed-form solution, plus a discretization bias that decays as 1/N
// with the mean mesh point count. That bias is the whole point: refinement
// sweeps against this backend show the same convergence behavior a real
// spatial solver would, while staying deterministic and instant. It is not a
// PDE solver and does not try to be one.
package analytic

import (
	"context"
	"math"

	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// BackendName identifies this backend in plans.
const BackendName = "analytic"

// ModelSPM is the single supported model identifier.
const ModelSPM = "spm"

// Observable names produced by a solve.
const (
	ObservableVoltage       = "terminal voltage"
	ObservableOverpotential = "overpotential"
)

// Parameter names understood by the model, with their defaults.
const (
	ParamOCV       = "ocv"       // open-circuit voltage [V]
	ParamAmplitude = "amplitude" // initial overpotential [V]
	ParamTau       = "tau"       // relaxation time constant [s]
	ParamBias      = "bias"      // discretization bias coefficient [V]
	ParamSteps     = "steps"     // output samples per solve
)

const (
	defaultOCV       = 3.8
	defaultAmplitude = 0.25
	defaultTau       = 900.0
	defaultBias      = 0.08
	defaultSteps     = 120
	minSteps         = 2
)

var requiredDomains = []string{"neg", "sep", "pos"}

var _ ports.SimulationBackend = (*Backend)(nil)

// Backend implements ports.SimulationBackend with the closed-form model.
type Backend struct{}

// NewBackend creates a new analytic Backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Name identifies the backend implementation.
func (b *Backend) Name() string {
	return BackendName
}

// RequiredDomains lists the spatial domains every resolution must cover.
func (b *Backend) RequiredDomains() []string {
	out := make([]string, len(requiredDomains))
	copy(out, requiredDomains)
	return out
}

// Build compiles the model into a Runnable at the given resolution.
func (b *Backend) Build(
	_ context.Context,
	model string,
	params map[string]float64,
	spec domain.ResolutionSpec,
) (ports.Runnable, error) {
	if model != ModelSPM {
		return nil, zerr.With(domain.ErrUnknownModel, "model", model)
	}
	if err := spec.Validate(requiredDomains); err != nil {
		return nil, err
	}

	return &runnable{
		ocv:       paramOr(params, ParamOCV, defaultOCV),
		amplitude: paramOr(params, ParamAmplitude, defaultAmplitude),
		tau:       paramOr(params, ParamTau, defaultTau),
		bias:      paramOr(params, ParamBias, defaultBias),
		steps:     stepsFrom(params),
		meanN:     meanPoints(spec),
	}, nil
}

// runnable is one isolated discretized model instance.
type runnable struct {
	ocv       float64
	amplitude float64
	tau       float64
	bias      float64
	steps     int
	meanN     float64
}

// Solve evaluates the closed-form solution over the span.
func (r *runnable) Solve(ctx context.Context, span domain.TimeSpan) (ports.Solution, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}

	voltage := make([]domain.Sample, 0, r.steps+1)
	overpotential := make([]domain.Sample, 0, r.steps+1)

	dt := span.Duration() / float64(r.steps)
	for i := 0; i <= r.steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		t := span.Start + float64(i)*dt
		eta := r.amplitude*math.Exp(-(t-span.Start)/r.tau) + r.bias/r.meanN

		voltage = append(voltage, domain.Sample{Time: t, Value: r.ocv - eta})
		overpotential = append(overpotential, domain.Sample{Time: t, Value: eta})
	}

	return &solution{series: map[string]domain.OutputSeries{
		ObservableVoltage:       domain.NewOutputSeries(ObservableVoltage, voltage),
		ObservableOverpotential: domain.NewOutputSeries(ObservableOverpotential, overpotential),
	}}, nil
}

// solution holds the named series of one completed solve.
type solution struct {
	series map[string]domain.OutputSeries
}

// Series returns the output series for the named observable.
func (s *solution) Series(name string) (domain.OutputSeries, bool) {
	out, ok := s.series[name]
	return out, ok
}

// Observables lists the names available on this solution.
func (s *solution) Observables() []string {
	names := make([]string, 0, len(s.series))
	for name := range s.series {
		names = append(names, name)
	}
	return names
}

func paramOr(params map[string]float64, name string, fallback float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return fallback
}

func stepsFrom(params map[string]float64) int {
	steps := int(paramOr(params, ParamSteps, defaultSteps))
	if steps < minSteps {
		return minSteps
	}
	return steps
}

// meanPoints averages the point counts over the required domains, so refining
// any electrode or the separator shrinks the bias.
func meanPoints(spec domain.ResolutionSpec) float64 {
	total := 0
	for _, domainID := range requiredDomains {
		total += spec[domainID]
	}
	return float64(total) / float64(len(requiredDomains))
}
