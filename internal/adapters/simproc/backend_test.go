package simproc_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volthaus/meshsweep/internal/adapters/simproc"
	"github.com/volthaus/meshsweep/internal/core/domain"
)

var testDomains = []string{"neg", "sep", "pos"}

func testSpec() domain.ResolutionSpec {
	return domain.ResolutionSpec{"neg": 8, "sep": 4, "pos": 8}
}

// shellSolver builds a backend around an inline shell script.
func shellSolver(t *testing.T, script string) *simproc.Backend {
	t.Helper()

	b, err := simproc.NewBackend([]string{"sh", "-c", script}, testDomains)
	require.NoError(t, err)
	return b
}

func TestNewBackend_MissingCommand(t *testing.T) {
	_, err := simproc.NewBackend(nil, testDomains)
	assert.ErrorIs(t, err, domain.ErrSolverCommandMissing)

	_, err = simproc.NewBackend([]string{""}, testDomains)
	assert.ErrorIs(t, err, domain.ErrSolverCommandMissing)
}

func TestBackend_Name(t *testing.T) {
	b := shellSolver(t, "true")

	assert.Equal(t, "exec", b.Name())
	assert.Equal(t, testDomains, b.RequiredDomains())
}

func TestBackend_MissingDomain(t *testing.T) {
	b := shellSolver(t, "true")

	_, err := b.Build(context.Background(), "spm", nil, domain.ResolutionSpec{"neg": 8})
	assert.ErrorIs(t, err, domain.ErrMissingDomain)
}

func TestBackend_SolveRoundTrip(t *testing.T) {
	response := `{"series":{"terminal voltage":[{"t":0,"v":3.8},{"t":3600,"v":3.65}]}}`
	b := shellSolver(t, fmt.Sprintf("cat >/dev/null; printf '%%s' '%s'", response))

	run, err := b.Build(context.Background(), "spm", nil, testSpec())
	require.NoError(t, err)

	solution, err := run.Solve(context.Background(), domain.TimeSpan{Start: 0, End: 3600})
	require.NoError(t, err)

	series, ok := solution.Series("terminal voltage")
	require.True(t, ok)
	require.Equal(t, 2, series.Len())
	final, ok := series.Final()
	require.True(t, ok)
	assert.InDelta(t, 3.65, final.Value, 1e-12)
	assert.Equal(t, []string{"terminal voltage"}, solution.Observables())
}

func TestBackend_SolveRequestEncoding(t *testing.T) {
	capture := filepath.Join(t.TempDir(), "request.json")
	b := shellSolver(t, fmt.Sprintf("cat > %s; printf '%%s' '{\"series\":{}}'", capture))

	params := map[string]float64{"ocv": 3.8, "tau": 600}
	run, err := b.Build(context.Background(), "spm", params, testSpec())
	require.NoError(t, err)

	_, err = run.Solve(context.Background(), domain.TimeSpan{Start: 0, End: 3600})
	require.NoError(t, err)

	request, err := os.ReadFile(capture)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "solve_request", request)
}

func TestBackend_SolverFailure(t *testing.T) {
	b := shellSolver(t, "cat >/dev/null; echo 'mesh generation blew up' >&2; exit 3")

	run, err := b.Build(context.Background(), "spm", nil, testSpec())
	require.NoError(t, err)

	_, err = run.Solve(context.Background(), domain.TimeSpan{Start: 0, End: 3600})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSolverCommandFailed.Error())
}

func TestBackend_InvalidResponse(t *testing.T) {
	b := shellSolver(t, "cat >/dev/null; echo not-json")

	run, err := b.Build(context.Background(), "spm", nil, testSpec())
	require.NoError(t, err)

	_, err = run.Solve(context.Background(), domain.TimeSpan{Start: 0, End: 3600})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSolverResponseInvalid.Error())
}

func TestBackend_SolveInvalidSpan(t *testing.T) {
	b := shellSolver(t, "true")

	run, err := b.Build(context.Background(), "spm", nil, testSpec())
	require.NoError(t, err)

	_, err = run.Solve(context.Background(), domain.TimeSpan{Start: 10, End: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeSpan)
}

func TestBackend_SolveCancelled(t *testing.T) {
	b := shellSolver(t, "sleep 10")

	run, err := b.Build(context.Background(), "spm", nil, testSpec())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = run.Solve(ctx, domain.TimeSpan{Start: 0, End: 3600})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
