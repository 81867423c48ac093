package entities

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// MSBuildNamespace is the namespace of classic .csproj project files.
const MSBuildNamespace = "http://schemas.microsoft.com/developer/msbuild/2003"

// ErrMalformedReference marks an Include attribute that carries a comma but
// not the "<name>, Version=<version>, Culture=..." shape.
var ErrMalformedReference = errors.New("couldn't identify reference")

var assemblyReferencePattern = regexp.MustCompile(`^(?P<assembly>.*?), Version=(?P<version>[^,]*), Culture.*$`)

// ProjectDocument is a parsed MSBuild project file.
type ProjectDocument struct {
	root *etree.Element
}

// NewProjectDocument wraps an already parsed project root element.
func NewProjectDocument(root *etree.Element) *ProjectDocument {
	return &ProjectDocument{root: root}
}

// ParseProjectDocument parses an MSBuild project file.
func ParseProjectDocument(reader io.Reader) (*ProjectDocument, error) {
	root, err := ParseXML(reader)
	if err != nil {
		return nil, err
	}
	return NewProjectDocument(root), nil
}

// References returns the references the project needs from the framework:
// every Reference element without a HintPath child, in document order.
//
// Include values with an embedded version are split into name and version.
// Malformed Include values still produce a name-only reference; each one is
// also reported through the returned error, which joins ErrMalformedReference
// occurrences and never stops the extraction.
func (d *ProjectDocument) References() ([]Reference, error) {
	var references []Reference
	var errs []error

	for _, element := range descendants(d.root, "Reference", MSBuildNamespace) {
		if child(element, "HintPath", MSBuildNamespace) != nil {
			continue
		}

		reference, err := parseInclude(attribute(element, "Include"))
		if err != nil {
			errs = append(errs, err)
		}
		references = append(references, reference)
	}

	return references, errors.Join(errs...)
}

func parseInclude(include string) (Reference, error) {
	if !strings.Contains(include, ",") {
		return Reference{Name: include}, nil
	}

	match := assemblyReferencePattern.FindStringSubmatch(include)
	if match == nil {
		return Reference{Name: include}, fmt.Errorf("%w %s", ErrMalformedReference, include)
	}

	return Reference{
		Name:    match[assemblyReferencePattern.SubexpIndex("assembly")],
		Version: match[assemblyReferencePattern.SubexpIndex("version")],
	}, nil
}
