// Package valerrors defines the error type reported when a document fails
// JSON Schema validation. It depends only on the standard library so the
// vendoring pipeline can copy it verbatim into standalone artifacts.
package valerrors

import "fmt"

// ValidationError reports the first schema violation found in a document.
type ValidationError struct {
	// Path is a JSON pointer to the offending value ("" means the document root).
	Path string
	// Rule is the schema keyword that failed (e.g. "required", "format").
	Rule string
	// Message is a human-readable reason.
	Message string
}

func (e *ValidationError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	return fmt.Sprintf("`%s` %s", path, e.Message)
}

// New creates a new ValidationError
func New(path, rule, message string) *ValidationError {
	return &ValidationError{
		Path:    path,
		Rule:    rule,
		Message: message,
	}
}
