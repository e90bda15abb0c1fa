package sweep_test

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"github.com/volthaus/meshsweep/internal/core/ports/mocks"
	"github.com/volthaus/meshsweep/internal/engine/sweep"
	"go.uber.org/mock/gomock"
)

// stubBackend is a scriptable in-memory backend. Default behavior solves
// every resolution with a two-sample series whose final value converges
// toward 1 as the negative electrode mesh is refined.
type stubBackend struct {
	buildCalls int32
	buildErr   func(spec domain.ResolutionSpec) error
	solveErr   func(spec domain.ResolutionSpec) error
	observable string
}

func newStubBackend() *stubBackend {
	return &stubBackend{observable: "terminal voltage"}
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) RequiredDomains() []string { return []string{"neg", "sep", "pos"} }

func (b *stubBackend) Build(
	_ context.Context,
	_ string,
	_ map[string]float64,
	spec domain.ResolutionSpec,
) (ports.Runnable, error) {
	atomic.AddInt32(&b.buildCalls, 1)
	if b.buildErr != nil {
		if err := b.buildErr(spec); err != nil {
			return nil, err
		}
	}
	return &stubRunnable{backend: b, spec: spec}, nil
}

func (b *stubBackend) builds() int {
	return int(atomic.LoadInt32(&b.buildCalls))
}

type stubRunnable struct {
	backend *stubBackend
	spec    domain.ResolutionSpec
}

func (r *stubRunnable) Solve(_ context.Context, span domain.TimeSpan) (ports.Solution, error) {
	if r.backend.solveErr != nil {
		if err := r.backend.solveErr(r.spec); err != nil {
			return nil, err
		}
	}

	n := float64(r.spec["neg"])
	samples := []domain.Sample{
		{Time: span.Start, Value: 1},
		{Time: span.End, Value: 1 - 0.1/n},
	}
	return &stubSolution{
		name:   r.backend.observable,
		series: domain.NewOutputSeries(r.backend.observable, samples),
	}, nil
}

type stubSolution struct {
	name   string
	series domain.OutputSeries
}

func (s *stubSolution) Series(name string) (domain.OutputSeries, bool) {
	if name != s.name {
		return domain.OutputSeries{}, false
	}
	return s.series, true
}

func (s *stubSolution) Observables() []string { return []string{s.name} }

// memStore is a thread-safe in-memory RunStore.
type memStore struct {
	mu      sync.Mutex
	records map[string]domain.RunRecord
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]domain.RunRecord)}
}

func (s *memStore) Get(inputHash string) (*domain.RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[inputHash]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *memStore) Put(record domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.InputHash] = record
	return nil
}

func uniform(n int) domain.ResolutionSpec {
	return domain.ResolutionSpec{"neg": n, "sep": n, "pos": n}
}

func testPlan(resolutions ...domain.ResolutionSpec) *domain.Plan {
	return &domain.Plan{
		Name:        "test",
		Backend:     "stub",
		Model:       "spm",
		Span:        domain.TimeSpan{Start: 0, End: 3600},
		Observable:  "terminal voltage",
		Resolutions: resolutions,
		OnFailure:   domain.FailContinue,
		Workers:     domain.DefaultWorkers,
	}
}

// newTestRunner wires a Runner with a pass-through tracer, a deterministic
// hasher, and the given store.
func newTestRunner(t *testing.T, store ports.RunStore) *sweep.Runner {
	t.Helper()

	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	hasher := mocks.NewMockRunHasher(ctrl)
	hasher.EXPECT().ComputeRunHash(
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
	).DoAndReturn(
		func(backend, model string, _ map[string]float64, spec domain.ResolutionSpec, _ domain.TimeSpan, observable string) string {
			return backend + "/" + model + "/" + spec.Key() + "/" + observable
		},
	).AnyTimes()

	return sweep.NewRunner(hasher, store, tracer)
}

func TestRunner_AllSucceed(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()
	plan := testPlan(uniform(4), uniform(8), uniform(16))

	result, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)

	require.Len(t, result.Entries, 3)
	assert.Equal(t, 3, result.Succeeded())
	assert.Equal(t, 0, result.Failed())
	for i, n := range []int{4, 8, 16} {
		assert.Equal(t, uniform(n), result.Entries[i].Spec)
		assert.Equal(t, domain.StatusCompleted, result.Entries[i].Status)
	}
}

func TestRunner_ConvergenceWithRefinement(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()
	plan := testPlan(uniform(4), uniform(8), uniform(16))

	result, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	// Final values approach the limit monotonically as the mesh refines.
	previous := math.Inf(1)
	for _, entry := range result.Entries {
		final, ok := entry.Series.Final()
		require.True(t, ok)
		gap := math.Abs(1 - final.Value)
		assert.Less(t, gap, previous)
		previous = gap
	}
}

func TestRunner_ContinuePreservesLengthAndOrder(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()
	backend.solveErr = func(spec domain.ResolutionSpec) error {
		if spec["neg"] == 8 {
			return domain.ErrInvalidTimeSpan // stand-in for any backend failure
		}
		return nil
	}

	plan := testPlan(uniform(4), uniform(8), uniform(16))

	result, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)

	// One entry per input resolution, the failure marked in place.
	require.Len(t, result.Entries, 3)
	assert.Equal(t, domain.StatusCompleted, result.Entries[0].Status)
	assert.Equal(t, domain.StatusFailed, result.Entries[1].Status)
	assert.Equal(t, domain.StatusCompleted, result.Entries[2].Status)

	assert.Equal(t, uniform(8), result.Entries[1].Spec)
	require.Error(t, result.Entries[1].Err)
	assert.ErrorContains(t, result.Entries[1].Err, domain.ErrRunFailed.Error())
}

func TestRunner_AbortStopsAtFirstFailure(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()
	backend.solveErr = func(spec domain.ResolutionSpec) error {
		if spec["neg"] == 8 {
			return domain.ErrInvalidTimeSpan
		}
		return nil
	}

	plan := testPlan(uniform(4), uniform(8), uniform(12), uniform(16), uniform(20))
	plan.OnFailure = domain.FailAbort

	result, err := runner.Run(context.Background(), backend, plan)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRunFailed.Error())

	// Only the run before the failure completed; later ones never started.
	require.Len(t, result.Entries, 1)
	assert.Equal(t, uniform(4), result.Entries[0].Spec)
	assert.Equal(t, domain.StatusCompleted, result.Entries[0].Status)
	assert.Equal(t, 2, backend.builds())
}

func TestRunner_ValidationFailFast(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()

	tests := []struct {
		name    string
		mutate  func(p *domain.Plan)
		wantErr error
	}{
		{
			name:    "empty resolution list",
			mutate:  func(p *domain.Plan) { p.Resolutions = nil },
			wantErr: domain.ErrNoResolutions,
		},
		{
			name:    "inverted span",
			mutate:  func(p *domain.Plan) { p.Span = domain.TimeSpan{Start: 3600, End: 0} },
			wantErr: domain.ErrInvalidTimeSpan,
		},
		{
			name:    "no observable",
			mutate:  func(p *domain.Plan) { p.Observable = "" },
			wantErr: domain.ErrNoObservable,
		},
		{
			name: "non-positive point count",
			mutate: func(p *domain.Plan) {
				p.Resolutions = []domain.ResolutionSpec{{"neg": 0, "sep": 4, "pos": 8}}
			},
			wantErr: domain.ErrInvalidPointCount,
		},
		{
			name: "missing required domain",
			mutate: func(p *domain.Plan) {
				p.Resolutions = []domain.ResolutionSpec{{"neg": 8, "pos": 8}}
			},
			wantErr: domain.ErrMissingDomain,
		},
		{
			name:    "negative worker count",
			mutate:  func(p *domain.Plan) { p.Workers = -1 },
			wantErr: domain.ErrInvalidWorkerCount,
		},
		{
			name: "non-finite parameter",
			mutate: func(p *domain.Plan) {
				p.Parameters = map[string]float64{"tau": math.NaN()}
			},
			wantErr: domain.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := testPlan(uniform(4), uniform(8))
			tt.mutate(plan)

			before := backend.builds()
			result, err := runner.Run(context.Background(), backend, plan)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			// Fail-fast: no run starts on a malformed plan.
			assert.Equal(t, before, backend.builds())
		})
	}
}

func TestRunner_ObservableNotFound(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()

	plan := testPlan(uniform(8))
	plan.Observable = "cell temperature"

	result, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, domain.StatusFailed, result.Entries[0].Status)
	assert.ErrorIs(t, result.Entries[0].Err, domain.ErrObservableNotFound)
}

func TestRunner_CacheHitSkipsBuild(t *testing.T) {
	store := newMemStore()
	runner := newTestRunner(t, store)
	backend := newStubBackend()
	plan := testPlan(uniform(8))

	first, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, first.Entries[0].Status)
	require.Equal(t, 1, backend.builds())

	second, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)
	require.Len(t, second.Entries, 1)
	assert.Equal(t, domain.StatusCached, second.Entries[0].Status)
	assert.Equal(t, 1, backend.builds(), "cached run must not rebuild")

	// Identical inputs produce the identical series.
	assert.Equal(t,
		first.Entries[0].Series.Samples(),
		second.Entries[0].Series.Samples(),
	)
}

func TestRunner_NoCacheBypassesStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRunStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Times(0)
	store.EXPECT().Put(gomock.Any()).Return(nil).AnyTimes()

	runner := newTestRunner(t, store)
	backend := newStubBackend()

	plan := testPlan(uniform(8))
	plan.NoCache = true

	result, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, result.Entries[0].Status)
}

func TestRunner_CacheWriteFailureDoesNotFailRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRunStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().Put(gomock.Any()).Return(domain.ErrStoreWriteFailed).AnyTimes()

	runner := newTestRunner(t, store)
	backend := newStubBackend()

	result, err := runner.Run(context.Background(), backend, testPlan(uniform(8)))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, result.Entries[0].Status)
}

func TestRunner_ParallelCompletesAll(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()

	plan := testPlan(uniform(4), uniform(8), uniform(12), uniform(16))
	plan.Workers = 2

	result, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)

	require.Len(t, result.Entries, 4)
	for i, n := range []int{4, 8, 12, 16} {
		assert.Equal(t, uniform(n), result.Entries[i].Spec, "entries keep input order")
		assert.Equal(t, domain.StatusCompleted, result.Entries[i].Status)
	}
}

func TestRunner_ParallelContinueMarksFailureInPlace(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()
	backend.solveErr = func(spec domain.ResolutionSpec) error {
		if spec["neg"] == 12 {
			return domain.ErrInvalidTimeSpan
		}
		return nil
	}

	plan := testPlan(uniform(4), uniform(8), uniform(12), uniform(16))
	plan.Workers = 2

	result, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)

	require.Len(t, result.Entries, 4)
	assert.Equal(t, domain.StatusFailed, result.Entries[2].Status)
	assert.Equal(t, 3, result.Succeeded())
	assert.Equal(t, 1, result.Failed())
}

func TestRunner_ParallelAbortReturnsError(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()
	backend.solveErr = func(spec domain.ResolutionSpec) error {
		if spec["neg"] == 8 {
			return domain.ErrInvalidTimeSpan
		}
		return nil
	}

	plan := testPlan(uniform(4), uniform(8), uniform(12), uniform(16))
	plan.Workers = 2
	plan.OnFailure = domain.FailAbort

	result, err := runner.Run(context.Background(), backend, plan)
	require.Error(t, err)

	// Partial result holds only entries that succeeded before the abort.
	for _, entry := range result.Entries {
		assert.True(t, entry.Succeeded())
	}
}

func TestRunner_ContextCancelled(t *testing.T) {
	runner := newTestRunner(t, newMemStore())
	backend := newStubBackend()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := runner.Run(ctx, backend, testPlan(uniform(4), uniform(8)))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, result.Entries)
	assert.Equal(t, 0, backend.builds())
}

func TestRunner_EmitsPlanLabels(t *testing.T) {
	ctrl := gomock.NewController(t)

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), []string{
		"neg=4,pos=4,sep=2",
		"neg=8,pos=8,sep=4",
	}).Times(1)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()

	hasher := mocks.NewMockRunHasher(ctrl)
	hasher.EXPECT().ComputeRunHash(
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
	).Return("0000000000000000").AnyTimes()

	runner := sweep.NewRunner(hasher, newMemStore(), tracer)
	backend := newStubBackend()

	plan := testPlan(
		domain.ResolutionSpec{"neg": 4, "sep": 2, "pos": 4},
		domain.ResolutionSpec{"neg": 8, "sep": 4, "pos": 8},
	)

	_, err := runner.Run(context.Background(), backend, plan)
	require.NoError(t, err)
}
