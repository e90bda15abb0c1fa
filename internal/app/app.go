// Package app implements the application layer for meshsweep.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/volthaus/meshsweep/internal/adapters/analytic"
	"github.com/volthaus/meshsweep/internal/adapters/simproc"
	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"github.com/volthaus/meshsweep/internal/engine/sweep"
	"github.com/volthaus/meshsweep/internal/ui/summary"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.PlanLoader
	runner  *sweep.Runner
	logger  ports.Logger
	watcher ports.Watcher
	out     io.Writer
}

// New creates a new App instance.
func New(
	loader ports.PlanLoader,
	runner *sweep.Runner,
	log ports.Logger,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		runner:  runner,
		logger:  log,
		watcher: watcher,
		out:     os.Stdout,
	}
}

// WithOutput redirects summary output. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions configuration for the Run method. Zero values mean "use the
// plan's setting".
type RunOptions struct {
	NoCache   bool
	Workers   int
	OnFailure string
	Watch     bool
}

// Run executes the sweep described by the plan file at planPath.
//
// In watch mode the sweep re-runs on every plan file change and only ctx
// cancellation ends the call; per-iteration failures are logged, not
// returned.
func (a *App) Run(ctx context.Context, planPath string, opts RunOptions) error {
	if !opts.Watch {
		return a.runOnce(ctx, planPath, opts)
	}

	if err := a.runOnce(ctx, planPath, opts); err != nil {
		a.logger.Error(err)
	}

	a.logger.Info(fmt.Sprintf("watching %s for changes", planPath))

	err := a.watcher.Watch(ctx, planPath, func() {
		a.logger.Info("plan changed, re-running sweep")
		if err := a.runOnce(ctx, planPath, opts); err != nil {
			a.logger.Error(err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) runOnce(ctx context.Context, planPath string, opts RunOptions) error {
	plan, err := a.loadPlan(planPath, opts)
	if err != nil {
		return err
	}

	backend, err := a.newBackend(plan)
	if err != nil {
		return err
	}

	result, err := a.runner.Run(ctx, backend, plan)
	if err != nil {
		if result != nil && len(result.Entries) > 0 {
			_ = summary.Render(a.out, result)
		}
		a.logger.Error(err)
		return errors.Join(domain.ErrSweepExecutionFailed, err)
	}

	for _, entry := range result.Entries {
		if entry.Status == domain.StatusFailed {
			a.logger.Error(entry.Err)
		}
	}

	if err := summary.Render(a.out, result); err != nil {
		return zerr.Wrap(err, "failed to render sweep summary")
	}

	if result.Succeeded() == 0 {
		return domain.ErrSweepExecutionFailed
	}
	return nil
}

// Validate loads the plan and checks it against its backend without running
// anything.
func (a *App) Validate(planPath string) error {
	plan, err := a.loadPlan(planPath, RunOptions{})
	if err != nil {
		return err
	}

	backend, err := a.newBackend(plan)
	if err != nil {
		return err
	}

	if err := plan.Validate(backend.RequiredDomains()); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf(
		"plan %q is valid: %d resolutions, backend %s", plan.Name, len(plan.Resolutions), plan.Backend,
	))
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Runs bool
}

// Clean removes cached run records.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	if !opts.Runs {
		return nil
	}

	a.logger.Info("removing run cache...")
	if err := os.RemoveAll(domain.StateDirName); err != nil {
		return zerr.Wrap(err, "failed to remove run cache")
	}
	a.logger.Info("removed run cache")
	return nil
}

// loadPlan reads the plan and applies command line overrides.
func (a *App) loadPlan(planPath string, opts RunOptions) (*domain.Plan, error) {
	plan, err := a.loader.Load(planPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load sweep plan")
	}

	if opts.NoCache {
		plan.NoCache = true
	}
	if opts.Workers > 0 {
		plan.Workers = opts.Workers
	}
	if opts.OnFailure != "" {
		policy, err := domain.ParseFailurePolicy(opts.OnFailure)
		if err != nil {
			return nil, err
		}
		plan.OnFailure = policy
	}

	return plan, nil
}

// newBackend resolves the plan's backend selection to an implementation.
func (a *App) newBackend(plan *domain.Plan) (ports.SimulationBackend, error) {
	switch plan.Backend {
	case analytic.BackendName:
		return analytic.NewBackend(), nil
	case simproc.BackendName:
		return simproc.NewBackend(plan.Command, plan.Domains)
	default:
		return nil, zerr.With(domain.ErrUnknownBackend, "backend", plan.Backend)
	}
}
