package extras

import _ "embed"

// Source is this module's own source text, embedded so the vendoring
// pipeline can copy it into standalone artifacts.
//
//go:embed extras.go
var Source string
