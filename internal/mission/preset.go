// File: internal/mission/preset.go
// Brief: Embedded Project WHITEFROST demo bundle.

package mission

import (
	_ "embed"
)

// whitefrostJSON is a complete two-platform arctic relay project used
// to seed demos and import tests without external files.
//
//go:embed whitefrost.json
var whitefrostJSON []byte

// WhitefrostRaw returns the embedded demo document verbatim.
func WhitefrostRaw() []byte {
	return append([]byte(nil), whitefrostJSON...)
}

// Whitefrost returns the embedded demo bundle in canonical form.
func Whitefrost() (Bundle, error) {
	return DecodeBundle(whitefrostJSON)
}
