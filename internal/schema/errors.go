package schema

import "fmt"

// MissingIDError indicates a fragment lacks the mandatory `$id` attribute
type MissingIDError struct {
	Reference string
}

func (e *MissingIDError) Error() string {
	return fmt.Sprintf("schema %q has no `$id` attribute", e.Reference)
}

// InvalidSchemaVersionError indicates a fragment declares a JSON Schema
// dialect different from the registry's
type InvalidSchemaVersionError struct {
	Reference string
	Version   string
	Expected  string
}

func (e *InvalidSchemaVersionError) Error() string {
	return fmt.Sprintf("schema %q declares spec version %q, registry uses %q",
		e.Reference, e.Version, e.Expected)
}

// DuplicateIDError indicates two fragments share the same `$id`
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("schema with `$id` %q is already registered", e.ID)
}
