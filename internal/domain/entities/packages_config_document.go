package entities

import (
	"io"

	"github.com/beevik/etree"
)

// PackagesConfigDocument is a parsed packages.config file.
type PackagesConfigDocument struct {
	root *etree.Element
}

// NewPackagesConfigDocument wraps an already parsed packages.config root element.
func NewPackagesConfigDocument(root *etree.Element) *PackagesConfigDocument {
	return &PackagesConfigDocument{root: root}
}

// EmptyPackagesConfigDocument is the document of a project without packages.
func EmptyPackagesConfigDocument() *PackagesConfigDocument {
	return NewPackagesConfigDocument(etree.NewElement("packages"))
}

// ParsePackagesConfigDocument parses a packages.config file.
func ParsePackagesConfigDocument(reader io.Reader) (*PackagesConfigDocument, error) {
	root, err := ParseXML(reader)
	if err != nil {
		return nil, err
	}
	return NewPackagesConfigDocument(root), nil
}

// Packages returns the resolved (id, version) of every package that is not
// flagged as a development dependency, in document order.
func (d *PackagesConfigDocument) Packages() []Reference {
	var references []Reference

	for _, element := range descendants(d.root, "package") {
		if attribute(element, "developmentDependency") == "true" {
			continue
		}
		references = append(references, Reference{
			Name:    attribute(element, "id"),
			Version: attribute(element, "version"),
		})
	}
	return references
}
