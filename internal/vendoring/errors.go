package vendoring

import "fmt"

// AttributionMissingError indicates a dependency's license file could not be
// located, which blocks producing a distributable artifact.
type AttributionMissingError struct {
	Dependency string
	Dir        string
}

func (e *AttributionMissingError) Error() string {
	return fmt.Sprintf("no license file found for %s in %q", e.Dependency, e.Dir)
}

// NewAttributionMissingError creates a new AttributionMissingError.
func NewAttributionMissingError(dependency, dir string) *AttributionMissingError {
	return &AttributionMissingError{Dependency: dependency, Dir: dir}
}
