package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
	"github.com/rios0rios0/nugetcheck/test/domain/entitybuilders"
)

func TestManifestDocumentReferences(t *testing.T) {
	t.Parallel()

	t.Run("should return framework assemblies with their target framework", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec := entitybuilders.NewNuspecBuilder().
			WithFrameworkAssembly("System", "net45").
			WithFrameworkAssembly("System.Core", "net45").
			BuildDocument()

		// when
		references := nuspec.References()

		// then
		assert.Equal(t, []entities.Reference{
			{Name: "System", Version: "net45"},
			{Name: "System.Core", Version: "net45"},
		}, references.FrameworkAssemblies)
		assert.Empty(t, references.NugetDependencies)
	})

	t.Run("should return dependencies whatever the attribute casing", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec := entitybuilders.NewNuspecBuilder().
			WithNugetDependency("Appccelerate.Fundamentals", "[1.0,2.0)").
			WithNugetDependency("Ninject", "[3.0,4.0)").
			BuildDocument()

		// when
		references := nuspec.References()

		// then
		assert.Equal(t, []entities.Reference{
			{Name: "Appccelerate.Fundamentals", Version: "[1.0,2.0)"},
			{Name: "Ninject", Version: "[3.0,4.0)"},
		}, references.NugetDependencies)
	})

	t.Run("should read manifests of later schema revisions", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec := entitybuilders.NewNuspecBuilder().
			WithNamespace("http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd").
			WithNugetDependency("Ninject", "[3.0,4.0)").
			BuildDocument()

		// when
		references := nuspec.NugetDependencies()

		// then
		assert.Equal(t, []entities.Reference{{Name: "Ninject", Version: "[3.0,4.0)"}}, references)
	})

	t.Run("should ignore elements of unrelated namespaces", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec := entitybuilders.NewNuspecBuilder().
			WithNamespace("urn:something-else").
			WithFrameworkAssembly("System", "net45").
			AsDevelopmentDependency().
			BuildDocument()

		// then
		assert.Empty(t, nuspec.FrameworkAssemblies())
		assert.False(t, nuspec.IsDevelopmentDependency())
	})
}

func TestManifestDocumentIsDevelopmentDependency(t *testing.T) {
	t.Parallel()

	t.Run("should be true when flagged", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec := entitybuilders.NewNuspecBuilder().AsDevelopmentDependency().BuildDocument()

		// then
		assert.True(t, nuspec.IsDevelopmentDependency())
	})

	t.Run("should be false when not flagged", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec := entitybuilders.NewNuspecBuilder().BuildDocument()

		// then
		assert.False(t, nuspec.IsDevelopmentDependency())
	})

	t.Run("should be false when flagged with another value", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec, err := entities.ParseManifestDocument(strings.NewReader(
			`<package><metadata xmlns="` + entities.NuspecNamespace + `">` +
				`<developmentDependency>false</developmentDependency></metadata></package>`,
		))
		require.NoError(t, err)

		// then
		assert.False(t, nuspec.IsDevelopmentDependency())
	})

	t.Run("should compare the flag value exactly", func(t *testing.T) {
		t.Parallel()

		// given
		nuspec, err := entities.ParseManifestDocument(strings.NewReader(
			`<package><metadata xmlns="` + entities.NuspecNamespace + `">` +
				`<developmentDependency> true </developmentDependency></metadata></package>`,
		))
		require.NoError(t, err)

		// then
		assert.False(t, nuspec.IsDevelopmentDependency())
	})
}

func TestParseManifestDocument(t *testing.T) {
	t.Parallel()

	t.Run("should read a windows-1252 nuspec with accented metadata", func(t *testing.T) {
		t.Parallel()

		// given
		content := `<?xml version="1.0" encoding="windows-1252"?>` +
			`<package><metadata xmlns="` + entities.NuspecNamespace + `">` +
			"<authors>Jos\xe9</authors>" +
			`<dependencies><dependency id="Ninject" version="[3.0,4.0)" /></dependencies>` +
			`</metadata></package>`

		// when
		nuspec, err := entities.ParseManifestDocument(strings.NewReader(content))

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Reference{{Name: "Ninject", Version: "[3.0,4.0)"}}, nuspec.NugetDependencies())
	})
}
