package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// NuspecBuilder helps create nuspec documents with a fluent interface.
type NuspecBuilder struct {
	*testkit.BaseBuilder
	namespace             string
	frameworkAssemblies   []pair
	nugetDependencies     []pair
	developmentDependency bool
}

// NewNuspecBuilder creates a builder for a nuspec without any references.
func NewNuspecBuilder() *NuspecBuilder {
	return &NuspecBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		namespace:   entities.NuspecNamespace,
	}
}

// WithNamespace sets the namespace of the metadata element.
func (b *NuspecBuilder) WithNamespace(namespace string) *NuspecBuilder {
	b.namespace = namespace
	return b
}

// WithFrameworkAssembly adds a frameworkAssembly element.
func (b *NuspecBuilder) WithFrameworkAssembly(assemblyName, targetFramework string) *NuspecBuilder {
	b.frameworkAssemblies = append(b.frameworkAssemblies, pair{assemblyName, targetFramework})
	return b
}

// WithNugetDependency adds a dependency element.
func (b *NuspecBuilder) WithNugetDependency(id, version string) *NuspecBuilder {
	b.nugetDependencies = append(b.nugetDependencies, pair{id, version})
	return b
}

// AsDevelopmentDependency marks the package as a development dependency.
func (b *NuspecBuilder) AsDevelopmentDependency() *NuspecBuilder {
	b.developmentDependency = true
	return b
}

// Build creates the document (satisfies testkit.Builder interface).
func (b *NuspecBuilder) Build() interface{} {
	return b.BuildDocument()
}

// BuildXML renders the nuspec file content.
func (b *NuspecBuilder) BuildXML() string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0"?>
<package xmlns:xsd="http://www.w3.org/2001/XMLSchema" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <metadata xmlns="` + escape(b.namespace) + `">
    <id>Appccelerate.IO</id>
    <version>0.0.0</version>
    <title>Appccelerate.IO</title>
    <authors>Appccelerate team</authors>
    <requireLicenseAcceptance>true</requireLicenseAcceptance>
    <description>description</description>
`)
	if b.developmentDependency {
		sb.WriteString("    <developmentDependency>true</developmentDependency>\n")
	}

	sb.WriteString("    <frameworkAssemblies>\n")
	for _, assembly := range b.frameworkAssemblies {
		sb.WriteString(`      <frameworkAssembly assemblyName="` + escape(assembly.first) +
			`" targetFramework="` + escape(assembly.second) + "\" />\n")
	}
	sb.WriteString("    </frameworkAssemblies>\n")

	sb.WriteString("    <dependencies>\n")
	for _, dependency := range b.nugetDependencies {
		sb.WriteString(`      <dependency Id="` + escape(dependency.first) +
			`" Version="` + escape(dependency.second) + "\" />\n")
	}
	sb.WriteString("    </dependencies>\n")

	sb.WriteString(`  </metadata>
  <files>
    <file src="Appccelerate.IO\bin\Release\Appccelerate.IO.dll" target="lib\net45" />
  </files>
</package>
`)
	return sb.String()
}

// BuildDocument parses the rendered nuspec into a document.
func (b *NuspecBuilder) BuildDocument() *entities.ManifestDocument {
	document, err := entities.ParseManifestDocument(strings.NewReader(b.BuildXML()))
	if err != nil {
		panic(err)
	}
	return document
}

// Reset clears the builder state, allowing it to be reused.
func (b *NuspecBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.namespace = entities.NuspecNamespace
	b.frameworkAssemblies = nil
	b.nugetDependencies = nil
	b.developmentDependency = false
	return b
}

// Clone creates a deep copy of the NuspecBuilder.
func (b *NuspecBuilder) Clone() testkit.Builder {
	return &NuspecBuilder{
		BaseBuilder:           b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		namespace:             b.namespace,
		frameworkAssemblies:   append([]pair(nil), b.frameworkAssemblies...),
		nugetDependencies:     append([]pair(nil), b.nugetDependencies...),
		developmentDependency: b.developmentDependency,
	}
}
