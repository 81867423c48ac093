package controllers_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetcheck/internal/domain/commands"
	"github.com/rios0rios0/nugetcheck/internal/infrastructure/controllers"
	"github.com/rios0rios0/nugetcheck/test/domain/commanddoubles"
)

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nugetcheck.yaml")
	content := "checks:\n  - name: io\n    project: IO/IO.csproj\n    nuspec: IO.nuspec\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunController(t *testing.T) {
	t.Parallel()

	t.Run("should bind to the run subcommand", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewRunController(&commanddoubles.StubRunCommand{})

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "run", bind.Use)
		assert.NotEmpty(t, bind.Long)
	})

	t.Run("should load the config file and run the selected check", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubRunCommand{}
		controller := controllers.NewRunController(stub)
		path := writeConfig(t)
		cmd := newControllerCommand(t, controller, "--config", path, "--check", "io")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "io", stub.LastOpts.CheckName)
		require.Len(t, stub.LastSettings.Checks, 1)
		assert.Equal(t, filepath.Join(filepath.Dir(path), "IO.nuspec"), stub.LastSettings.Checks[0].Nuspec)
	})

	t.Run("should fail when some checks failed", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubRunCommand{
			ExecuteResult: &commands.RunResult{Checked: 3, Failed: 2},
		}
		controller := controllers.NewRunController(stub)
		cmd := newControllerCommand(t, controller, "-c", writeConfig(t))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, controllers.ErrVerificationFailed)
		assert.Contains(t, err.Error(), "2 of 3 checks failed")
	})

	t.Run("should return run errors as is", func(t *testing.T) {
		t.Parallel()

		// given
		runErr := errors.New(`no check named "other" in config file`)
		stub := &commanddoubles.StubRunCommand{ExecuteErr: runErr}
		controller := controllers.NewRunController(stub)
		cmd := newControllerCommand(t, controller, "-c", writeConfig(t), "--check", "other")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, runErr)
	})

	t.Run("should fail on an invalid config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubRunCommand{}
		controller := controllers.NewRunController(stub)
		path := filepath.Join(t.TempDir(), "nugetcheck.yaml")
		require.NoError(t, os.WriteFile(path, []byte("checks: []\n"), 0o600))
		cmd := newControllerCommand(t, controller, "-c", path)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
		assert.Zero(t, stub.ExecuteCallCount)
	})
}
