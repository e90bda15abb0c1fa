// Package sweep implements the mesh refinement sweep engine.
package sweep

import (
	"context"
	"time"

	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes a sweep plan against a simulation backend: one run per
// resolution, outcomes collected in input order. Runs carry no state between
// them, so the worker-pool mode needs no synchronization beyond indexed
// writes.
type Runner struct {
	hasher ports.RunHasher
	store  ports.RunStore
	tracer ports.Tracer
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(hasher ports.RunHasher, store ports.RunStore, tracer ports.Tracer) *Runner {
	return &Runner{
		hasher: hasher,
		store:  store,
		tracer: tracer,
	}
}

// Run validates the whole plan, then executes one simulation per resolution
// and collects the plan's observable from each.
//
// Validation is fail-fast: a malformed plan returns before any run starts.
// With FailContinue the result holds one entry per input resolution, failed
// entries marked in place so index-based labeling stays aligned. With
// FailAbort the result holds the successfully completed entries (in input
// order) and the first failure is returned as the error.
func (r *Runner) Run(
	ctx context.Context,
	backend ports.SimulationBackend,
	plan *domain.Plan,
) (*domain.SweepResult, error) {
	if err := plan.Validate(backend.RequiredDomains()); err != nil {
		return nil, err
	}

	labels := make([]string, len(plan.Resolutions))
	for i, spec := range plan.Resolutions {
		labels[i] = spec.Key()
	}
	r.tracer.EmitPlan(ctx, labels)

	entries := make([]domain.SweepEntry, len(plan.Resolutions))
	for i, spec := range plan.Resolutions {
		entries[i] = domain.SweepEntry{Spec: spec.Clone(), Status: domain.StatusPending}
	}

	result := &domain.SweepResult{
		Observable: plan.Observable,
		Span:       plan.Span,
		Entries:    entries,
	}

	var err error
	if plan.Workers > 1 {
		err = r.runParallel(ctx, backend, plan, entries)
	} else {
		err = r.runSequential(ctx, backend, plan, entries)
	}

	if err != nil {
		result.Entries = succeededOnly(entries)
		return result, err
	}
	return result, nil
}

// runSequential executes entries in input order on the calling goroutine.
func (r *Runner) runSequential(
	ctx context.Context,
	backend ports.SimulationBackend,
	plan *domain.Plan,
	entries []domain.SweepEntry,
) error {
	for i := range entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		entries[i] = r.executeEntry(ctx, backend, plan, entries[i].Spec)

		if entries[i].Status == domain.StatusFailed && plan.OnFailure == domain.FailAbort {
			return entries[i].Err
		}
	}
	return nil
}

// runParallel executes entries on a bounded worker pool. Each worker writes
// its outcome to the entry's input index, preserving order. In abort mode the
// first failure cancels the group context, which stops in-flight solves that
// honor cancellation and prevents new runs from starting.
func (r *Runner) runParallel(
	ctx context.Context,
	backend ports.SimulationBackend,
	plan *domain.Plan,
	entries []domain.SweepEntry,
) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(plan.Workers)

	for i := range entries {
		g.Go(func() error {
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}

			entries[i] = r.executeEntry(gctx, backend, plan, entries[i].Spec)

			if entries[i].Status == domain.StatusFailed && plan.OnFailure == domain.FailAbort {
				return entries[i].Err
			}
			return nil
		})
	}

	return g.Wait()
}

// executeEntry runs a single resolution: cache check, build, solve, extract.
func (r *Runner) executeEntry(
	ctx context.Context,
	backend ports.SimulationBackend,
	plan *domain.Plan,
	spec domain.ResolutionSpec,
) domain.SweepEntry {
	label := spec.Key()

	ctx, span := r.tracer.Start(ctx, label)
	defer span.End()

	inputHash := r.hasher.ComputeRunHash(
		backend.Name(), plan.Model, plan.Parameters, spec, plan.Span, plan.Observable,
	)
	span.SetAttribute("meshsweep.input_hash", inputHash)

	if !plan.NoCache {
		if record, err := r.store.Get(inputHash); err == nil && record != nil && record.Observable == plan.Observable {
			span.SetAttribute("meshsweep.cached", true)
			return domain.SweepEntry{
				Spec:   spec,
				Status: domain.StatusCached,
				Series: record.Series(),
			}
		}
	}

	runnable, err := backend.Build(ctx, plan.Model, plan.Parameters, spec)
	if err != nil {
		return r.failEntry(span, spec, label, err)
	}

	solution, err := runnable.Solve(ctx, plan.Span)
	if err != nil {
		return r.failEntry(span, spec, label, err)
	}

	series, ok := solution.Series(plan.Observable)
	if !ok {
		err := zerr.With(domain.ErrObservableNotFound, "observable", plan.Observable)
		return r.failEntry(span, spec, label, err)
	}

	// Cache write failures do not fail the run; the next invocation simply
	// recomputes.
	_ = r.store.Put(domain.RunRecord{
		InputHash:  inputHash,
		Observable: plan.Observable,
		Samples:    series.Samples(),
		Timestamp:  time.Now(),
	})

	span.SetAttribute("meshsweep.samples", series.Len())

	return domain.SweepEntry{
		Spec:   spec,
		Status: domain.StatusCompleted,
		Series: series,
	}
}

func (r *Runner) failEntry(span ports.Span, spec domain.ResolutionSpec, label string, err error) domain.SweepEntry {
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrRunFailed.Error()), "resolution", label)
	span.RecordError(wrapped)
	return domain.SweepEntry{
		Spec:   spec,
		Status: domain.StatusFailed,
		Err:    wrapped,
	}
}

// succeededOnly filters entries down to the successful ones, preserving input
// order. Used when a sweep errors out so the partial result contains only
// usable series.
func succeededOnly(entries []domain.SweepEntry) []domain.SweepEntry {
	out := make([]domain.SweepEntry, 0, len(entries))
	for _, e := range entries {
		if e.Succeeded() {
			out = append(out, e)
		}
	}
	return out
}
