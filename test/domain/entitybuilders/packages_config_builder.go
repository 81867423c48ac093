package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/nugetcheck/internal/domain/entities"
)

// PackagesConfigBuilder helps create packages.config documents with a fluent interface.
type PackagesConfigBuilder struct {
	*testkit.BaseBuilder
	packages []string
}

// NewPackagesConfigBuilder creates a builder for a packages.config without packages.
func NewPackagesConfigBuilder() *PackagesConfigBuilder {
	return &PackagesConfigBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
	}
}

// WithPackage adds a resolved package.
func (b *PackagesConfigBuilder) WithPackage(id, version string) *PackagesConfigBuilder {
	b.packages = append(b.packages, `<package id="`+escape(id)+`" version="`+escape(version)+
		`" targetFramework="net45" />`)
	return b
}

// WithDevelopmentPackage adds a package flagged as a development dependency.
func (b *PackagesConfigBuilder) WithDevelopmentPackage(id, version string) *PackagesConfigBuilder {
	b.packages = append(b.packages, `<package id="`+escape(id)+`" version="`+escape(version)+
		`" targetFramework="net45" developmentDependency="true" />`)
	return b
}

// Build creates the document (satisfies testkit.Builder interface).
func (b *PackagesConfigBuilder) Build() interface{} {
	return b.BuildDocument()
}

// BuildXML renders the packages.config content.
func (b *PackagesConfigBuilder) BuildXML() string {
	return `<?xml version="1.0" encoding="utf-8"?>
<packages>
  ` + strings.Join(b.packages, "\n  ") + `
</packages>
`
}

// BuildDocument parses the rendered packages.config into a document.
func (b *PackagesConfigBuilder) BuildDocument() *entities.PackagesConfigDocument {
	document, err := entities.ParsePackagesConfigDocument(strings.NewReader(b.BuildXML()))
	if err != nil {
		panic(err)
	}
	return document
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackagesConfigBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.packages = nil
	return b
}

// Clone creates a deep copy of the PackagesConfigBuilder.
func (b *PackagesConfigBuilder) Clone() testkit.Builder {
	return &PackagesConfigBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		packages:    append([]string(nil), b.packages...),
	}
}
