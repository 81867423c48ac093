package entities

import (
	"io"

	"github.com/beevik/etree"
)

// NuspecNamespace is the packaging-manifest schema namespace the checks were
// originally written against.
const NuspecNamespace = "http://schemas.microsoft.com/packaging/2010/07/nuspec.xsd"

// NuspecNamespaces lists every published revision of the nuspec schema.
var NuspecNamespaces = []string{ //nolint:gochecknoglobals // read-only schema list
	NuspecNamespace,
	"http://schemas.microsoft.com/packaging/2011/08/nuspec.xsd",
	"http://schemas.microsoft.com/packaging/2012/06/nuspec.xsd",
	"http://schemas.microsoft.com/packaging/2013/01/nuspec.xsd",
	"http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd",
}

// ManifestDocument is a parsed nuspec file.
type ManifestDocument struct {
	root *etree.Element
}

// NewManifestDocument wraps an already parsed nuspec root element.
func NewManifestDocument(root *etree.Element) *ManifestDocument {
	return &ManifestDocument{root: root}
}

// ParseManifestDocument parses a nuspec file.
func ParseManifestDocument(reader io.Reader) (*ManifestDocument, error) {
	root, err := ParseXML(reader)
	if err != nil {
		return nil, err
	}
	return NewManifestDocument(root), nil
}

// IsDevelopmentDependency is true when any developmentDependency element
// of the manifest has the value "true".
func (d *ManifestDocument) IsDevelopmentDependency() bool {
	for _, element := range descendants(d.root, "developmentDependency", NuspecNamespaces...) {
		if element.Text() == "true" {
			return true
		}
	}
	return false
}

// FrameworkAssemblies returns every frameworkAssembly as (assemblyName, targetFramework).
func (d *ManifestDocument) FrameworkAssemblies() []Reference {
	var references []Reference
	for _, element := range descendants(d.root, "frameworkAssembly", NuspecNamespaces...) {
		references = append(references, Reference{
			Name:    attribute(element, "assemblyName"),
			Version: attribute(element, "targetFramework"),
		})
	}
	return references
}

// NugetDependencies returns every dependency as (id, version).
func (d *ManifestDocument) NugetDependencies() []Reference {
	var references []Reference
	for _, element := range descendants(d.root, "dependency", NuspecNamespaces...) {
		references = append(references, Reference{
			Name:    attribute(element, "id"),
			Version: attribute(element, "version"),
		})
	}
	return references
}

// References returns both reference sets declared by the manifest.
func (d *ManifestDocument) References() ManifestReferences {
	return ManifestReferences{
		FrameworkAssemblies: d.FrameworkAssemblies(),
		NugetDependencies:   d.NugetDependencies(),
	}
}
