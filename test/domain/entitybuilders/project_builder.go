package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// ProjectBuilder helps create MSBuild project documents with a fluent interface.
type ProjectBuilder struct {
	*testkit.BaseBuilder
	references []string
}

// NewProjectBuilder creates a builder for a project without references.
func NewProjectBuilder() *ProjectBuilder {
	return &ProjectBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
	}
}

// WithFrameworkReference adds a GAC reference such as "System.Core".
func (b *ProjectBuilder) WithFrameworkReference(assembly string) *ProjectBuilder {
	b.references = append(b.references, `<Reference Include="`+escape(assembly)+`" />`)
	return b
}

// WithVersionedFrameworkReference adds a strong-named GAC reference.
func (b *ProjectBuilder) WithVersionedFrameworkReference(assembly, version string) *ProjectBuilder {
	return b.WithRawReference(assembly + ", Version=" + version +
		", Culture=neutral, PublicKeyToken=b77a5c561934e089, processorArchitecture=MSIL")
}

// WithRawReference adds a reference with the Include attribute taken as is.
func (b *ProjectBuilder) WithRawReference(include string) *ProjectBuilder {
	b.references = append(b.references, `<Reference Include="`+escape(include)+`">
      <SpecificVersion>False</SpecificVersion>
    </Reference>`)
	return b
}

// WithNugetReference adds a reference resolved from the packages folder.
// It carries a HintPath, so it never counts as a framework reference.
func (b *ProjectBuilder) WithNugetReference(id, version string) *ProjectBuilder {
	b.references = append(b.references, `<Reference Include="`+escape(id)+`, Version=`+escape(version)+
		`, Culture=neutral, PublicKeyToken=917bca444d1f2b4c, processorArchitecture=MSIL">
      <SpecificVersion>False</SpecificVersion>
      <HintPath>..\packages\`+escape(id)+`.`+escape(version)+`\lib\net45\`+escape(id)+`.dll</HintPath>
    </Reference>`)
	return b
}

// Build creates the document (satisfies testkit.Builder interface).
func (b *ProjectBuilder) Build() interface{} {
	return b.BuildDocument()
}

// BuildXML renders the project file content.
func (b *ProjectBuilder) BuildXML() string {
	return `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="12.0" DefaultTargets="Build" xmlns="` + entities.MSBuildNamespace + `">
  <PropertyGroup>
    <OutputType>Library</OutputType>
    <RootNamespace>Appccelerate.IO</RootNamespace>
    <AssemblyName>Appccelerate.IO</AssemblyName>
    <TargetFrameworkVersion>v4.5</TargetFrameworkVersion>
  </PropertyGroup>
  <ItemGroup>
    ` + strings.Join(b.references, "\n    ") + `
  </ItemGroup>
  <ItemGroup>
    <Compile Include="AbsoluteFilePath.cs" />
  </ItemGroup>
  <ItemGroup>
    <None Include="packages.config" />
  </ItemGroup>
</Project>
`
}

// BuildDocument parses the rendered project into a document.
func (b *ProjectBuilder) BuildDocument() *entities.ProjectDocument {
	document, err := entities.ParseProjectDocument(strings.NewReader(b.BuildXML()))
	if err != nil {
		panic(err)
	}
	return document
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.references = nil
	return b
}

// Clone creates a deep copy of the ProjectBuilder.
func (b *ProjectBuilder) Clone() testkit.Builder {
	return &ProjectBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		references:  append([]string(nil), b.references...),
	}
}
