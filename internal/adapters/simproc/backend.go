// Package simproc runs an external solver process as a simulation backend.
//
// The solver is any executable that reads one JSON request on stdin and
// writes one JSON response on stdout. One process is spawned per solve, so
// the solver never needs to manage state between runs.
package simproc

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// BackendName identifies this backend in plans.
const BackendName = "exec"

// stderrTailLimit caps how much solver stderr is attached to failures.
const stderrTailLimit = 2048

var _ ports.SimulationBackend = (*Backend)(nil)

// Backend implements ports.SimulationBackend by delegating each solve to an
// external solver command.
type Backend struct {
	command []string
	domains []string
}

// NewBackend creates an exec Backend around the given solver command line.
// The domains are what the solver expects every resolution to cover.
func NewBackend(command []string, domains []string) (*Backend, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, domain.ErrSolverCommandMissing
	}

	return &Backend{
		command: append([]string(nil), command...),
		domains: append([]string(nil), domains...),
	}, nil
}

// Name identifies the backend implementation.
func (b *Backend) Name() string {
	return BackendName
}

// RequiredDomains lists the spatial domains every resolution must cover.
func (b *Backend) RequiredDomains() []string {
	out := make([]string, len(b.domains))
	copy(out, b.domains)
	return out
}

// Build captures the model configuration for a single resolution. The solver
// process itself is not started until Solve.
func (b *Backend) Build(
	_ context.Context,
	model string,
	params map[string]float64,
	spec domain.ResolutionSpec,
) (ports.Runnable, error) {
	if err := spec.Validate(b.domains); err != nil {
		return nil, err
	}

	return &runnable{
		command: b.command,
		request: solveRequest{
			Model:      model,
			Parameters: params,
			Resolution: spec.Clone(),
		},
	}, nil
}

// solveRequest is the JSON document written to the solver's stdin.
type solveRequest struct {
	Model      string                `json:"model"`
	Parameters map[string]float64    `json:"parameters,omitempty"`
	Resolution domain.ResolutionSpec `json:"resolution"`
	Span       spanRequest           `json:"span"`
}

type spanRequest struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// solveResponse is the JSON document read from the solver's stdout.
type solveResponse struct {
	Series map[string][]domain.Sample `json:"series"`
}

type runnable struct {
	command []string
	request solveRequest
}

// Solve spawns the solver process and decodes its response.
func (r *runnable) Solve(ctx context.Context, span domain.TimeSpan) (ports.Solution, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}

	request := r.request
	request.Span = spanRequest{Start: span.Start, End: span.End}

	input, err := json.Marshal(request)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode solver request")
	}

	//nolint:gosec // Solver command comes from the user's plan file
	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		failure := zerr.Wrap(err, domain.ErrSolverCommandFailed.Error())
		if tail := stderrTail(stderr.String()); tail != "" {
			failure = zerr.With(failure, "stderr", tail)
		}
		return nil, failure
	}

	var response solveResponse
	if err := json.Unmarshal(stdout.Bytes(), &response); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSolverResponseInvalid.Error())
	}

	series := make(map[string]domain.OutputSeries, len(response.Series))
	for name, samples := range response.Series {
		series[name] = domain.NewOutputSeries(name, samples)
	}

	return &solution{series: series}, nil
}

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

func stderrTail(out string) string {
	out = strings.TrimSpace(out)
	if len(out) > stderrTailLimit {
		out = out[len(out)-stderrTailLimit:]
	}
	return out
}
