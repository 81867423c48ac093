package commands_test

import (
	"context"
	"errors"
	"testing"

	logger "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetcheck/internal/domain/commands"
	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
	"github.com/rios0rios0/nugetcheck/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/nugetcheck/test/infrastructure/repositorydoubles"
)

func validCheckOptions() commands.CheckOptions {
	return commands.CheckOptions{
		ProjectFileFullPath:    "/src/Appccelerate.IO/Appccelerate.IO.csproj",
		NuspecFileFullPath:     "/src/Appccelerate.IO.nuspec",
		PackagesConfigFullPath: "/src/Appccelerate.IO/packages.config",
	}
}

func newCheckCommand(repository *doubles.SpyDocumentRepository) *commands.CheckCommand {
	return commands.NewCheckCommand(repository, entities.NewVerifier(entities.NewVersionChecker()))
}

func TestCheckCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should reject options missing a path in declaration order", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name    string
			mutate  func(*commands.CheckOptions)
			message string
		}{
			{
				name:    "project",
				mutate:  func(o *commands.CheckOptions) { o.ProjectFileFullPath = ""; o.NuspecFileFullPath = "" },
				message: "ProjectFileFullPath is not set",
			},
			{
				name:    "nuspec",
				mutate:  func(o *commands.CheckOptions) { o.NuspecFileFullPath = ""; o.PackagesConfigFullPath = "" },
				message: "NuspecFileFullPath is not set",
			},
			{
				name:    "packages config",
				mutate:  func(o *commands.CheckOptions) { o.PackagesConfigFullPath = "" },
				message: "PackagesConfigFullPath is not set",
			},
		}

		for _, tc := range cases {
			t.Run("should fail without "+tc.name, func(t *testing.T) {
				t.Parallel()

				// given
				repository := &doubles.SpyDocumentRepository{}
				opts := validCheckOptions()
				tc.mutate(&opts)

				// when
				result, err := newCheckCommand(repository).Execute(context.Background(), opts)

				// then
				require.ErrorIs(t, err, commands.ErrMissingPath)
				assert.EqualError(t, err, tc.message)
				assert.Nil(t, result)
				assert.Zero(t, repository.Calls())
			})
		}
	})

	t.Run("should read the three documents from the given paths", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.SpyDocumentRepository{
			Project:        entitybuilders.NewProjectBuilder().BuildDocument(),
			Manifest:       entitybuilders.NewNuspecBuilder().BuildDocument(),
			PackagesConfig: entitybuilders.NewPackagesConfigBuilder().BuildDocument(),
		}
		opts := validCheckOptions()
		opts.AllowMissingPackagesConfig = true

		// when
		result, err := newCheckCommand(repository).Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.True(t, result.Succeeded())
		assert.Equal(t, []string{opts.ProjectFileFullPath}, repository.ProjectPaths)
		assert.Equal(t, []string{opts.NuspecFileFullPath}, repository.ManifestPaths)
		assert.Equal(t, []string{opts.PackagesConfigFullPath}, repository.PackagesConfigPaths)
		assert.Equal(t, []bool{true}, repository.AllowMissingFlags)
	})

	t.Run("should return violations as part of the result", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.SpyDocumentRepository{
			Project: entitybuilders.NewProjectBuilder().
				WithFrameworkReference("System.Core").
				BuildDocument(),
			Manifest: entitybuilders.NewNuspecBuilder().BuildDocument(),
			PackagesConfig: entitybuilders.NewPackagesConfigBuilder().
				WithPackage("Ninject", "3.1.2").
				BuildDocument(),
		}

		// when
		result, err := newCheckCommand(repository).Execute(context.Background(), validCheckOptions())

		// then
		require.NoError(t, err)
		assert.False(t, result.Succeeded())
		assert.Equal(t, []entities.Violation{
			entities.NewMissingFrameworkReferenceViolation("System.Core"),
			entities.NewMissingNugetReferenceViolation("Ninject"),
		}, result.Violations)
	})

	t.Run("should warn about malformed project references", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.SpyDocumentRepository{
			Project: entitybuilders.NewProjectBuilder().
				WithRawReference("Broken, Culture=neutral").
				WithRawReference("AlsoBroken, PublicKeyToken=null").
				BuildDocument(),
			Manifest:       entitybuilders.NewNuspecBuilder().AsDevelopmentDependency().BuildDocument(),
			PackagesConfig: entitybuilders.NewPackagesConfigBuilder().BuildDocument(),
		}

		// when
		result, err := newCheckCommand(repository).Execute(context.Background(), validCheckOptions())

		// then
		require.NoError(t, err)
		assert.True(t, result.Succeeded())
		assert.Equal(t, []string{
			"couldn't identify reference Broken, Culture=neutral",
			"couldn't identify reference AlsoBroken, PublicKeyToken=null",
		}, result.Warnings)
	})

	t.Run("should stop when a document cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		readErr := errors.New("permission denied")
		repository := &doubles.SpyDocumentRepository{
			Project:     entitybuilders.NewProjectBuilder().BuildDocument(),
			ManifestErr: readErr,
		}

		// when
		result, err := newCheckCommand(repository).Execute(context.Background(), validCheckOptions())

		// then
		require.ErrorIs(t, err, readErr)
		assert.Nil(t, result)
		assert.Empty(t, repository.PackagesConfigPaths)
	})

	t.Run("should turn a missing document into an error", func(t *testing.T) {
		t.Parallel()

		// given
		repository := &doubles.SpyDocumentRepository{
			Project:        entitybuilders.NewProjectBuilder().BuildDocument(),
			PackagesConfig: entitybuilders.NewPackagesConfigBuilder().BuildDocument(),
		}

		// when
		result, err := newCheckCommand(repository).Execute(context.Background(), validCheckOptions())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to verify")
		assert.Nil(t, result)
	})
}

func TestCheckCommandExecuteLogging(t *testing.T) {
	// NOTE: cannot use t.Parallel() with a hook on the global logger

	t.Run("should leave reporting of missing paths to the caller", func(t *testing.T) {
		// given
		previous := logger.StandardLogger().ReplaceHooks(make(logger.LevelHooks))
		t.Cleanup(func() { logger.StandardLogger().ReplaceHooks(previous) })
		hook := logtest.NewGlobal()
		opts := validCheckOptions()
		opts.NuspecFileFullPath = ""

		// when
		_, err := newCheckCommand(&doubles.SpyDocumentRepository{}).Execute(context.Background(), opts)

		// then
		require.ErrorIs(t, err, commands.ErrMissingPath)
		assert.Empty(t, hook.AllEntries())
	})
}
