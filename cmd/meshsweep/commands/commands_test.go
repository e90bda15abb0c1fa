package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volthaus/meshsweep/cmd/meshsweep/commands"
	"github.com/volthaus/meshsweep/internal/app"
	"github.com/volthaus/meshsweep/internal/build"
)

type mockApp struct {
	runFunc      func(ctx context.Context, planPath string, opts app.RunOptions) error
	validateFunc func(planPath string) error
	cleanFunc    func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Run(ctx context.Context, planPath string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, planPath, opts)
	}
	return nil
}

func (m *mockApp) Validate(planPath string) error {
	if m.validateFunc != nil {
		return m.validateFunc(planPath)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPlan string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, planPath string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedPlan = planPath
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "plans/coin-cell.yaml", "--no-cache", "--workers", "4", "--on-failure", "abort"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "plans/coin-cell.yaml", capturedPlan)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, 4, capturedOpts.Workers)
		assert.Equal(t, "abort", capturedOpts.OnFailure)
		assert.False(t, capturedOpts.Watch)
	})

	t.Run("defaults to sweep.yaml", func(t *testing.T) {
		var capturedPlan string

		mock := &mockApp{
			runFunc: func(_ context.Context, planPath string, _ app.RunOptions) error {
				capturedPlan = planPath
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "sweep.yaml", capturedPlan)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Validate(t *testing.T) {
	var capturedPlan string

	mock := &mockApp{
		validateFunc: func(planPath string) error {
			capturedPlan = planPath
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"validate", "custom.yaml"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "custom.yaml", capturedPlan)
}

func TestCommands_Clean(t *testing.T) {
	var capturedOpts app.CleanOptions

	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, capturedOpts.Runs)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
