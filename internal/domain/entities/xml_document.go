package entities

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ErrNoRootElement is returned for a document without any element.
var ErrNoRootElement = errors.New("document has no root element")

// ParseXML reads a whole document and returns its root element. Documents
// declaring a legacy encoding such as windows-1252 are decoded to UTF-8.
func ParseXML(reader io.Reader) (*etree.Element, error) {
	document := etree.NewDocument()
	document.ReadSettings.CharsetReader = charset.NewReaderLabel

	if _, err := document.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("failed to parse xml: %w", err)
	}

	root := document.Root()
	if root == nil {
		return nil, fmt.Errorf("failed to parse xml: %w", ErrNoRootElement)
	}
	return root, nil
}

// descendants returns every element below element (not element itself)
// matching tag and one of spaces, in document order. FindElements walks
// the tree breadth-first, which would reorder nested matches.
func descendants(element *etree.Element, tag string, spaces ...string) []*etree.Element {
	var found []*etree.Element
	for _, child := range element.ChildElements() {
		if isElement(child, tag, spaces...) {
			found = append(found, child)
		}
		found = append(found, descendants(child, tag, spaces...)...)
	}
	return found
}

// child returns the first direct child matching tag and one of spaces.
func child(element *etree.Element, tag string, spaces ...string) *etree.Element {
	for _, candidate := range element.ChildElements() {
		if isElement(candidate, tag, spaces...) {
			return candidate
		}
	}
	return nil
}

// isElement compares the local name and the resolved namespace URI. An empty
// spaces list means "no namespace".
func isElement(element *etree.Element, tag string, spaces ...string) bool {
	if element.Tag != tag {
		return false
	}
	uri := element.NamespaceURI()
	if len(spaces) == 0 {
		return uri == ""
	}
	return slices.Contains(spaces, uri)
}

// attributeValue looks an attribute up by local name ignoring case and any
// prefix. Namespace declarations are not attributes here.
func attributeValue(element *etree.Element, name string) (string, bool) {
	for _, attribute := range element.Attr {
		if attribute.Space == "xmlns" || (attribute.Space == "" && attribute.Key == "xmlns") {
			continue
		}
		if strings.EqualFold(attribute.Key, name) {
			return attribute.Value, true
		}
	}
	return "", false
}

func attribute(element *etree.Element, name string) string {
	value, _ := attributeValue(element, name)
	return value
}
