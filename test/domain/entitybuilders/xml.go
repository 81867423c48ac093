package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"encoding/xml"
	"strings"
)

// escape makes s safe to embed as XML character data or attribute value.
func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

type pair struct {
	first  string
	second string
}
