package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"github.com/volthaus/meshsweep/internal/app"
	_ "github.com/volthaus/meshsweep/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	// The run store node opens a file relative to the working directory.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	// Verify that the application graph can be constructed.
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
