// Package extras holds validations applied to a whole manifest document
// after JSON Schema validation. Functions compose left to right, each
// receiving the previous function's output. The file depends only on the
// standard library so the vendoring pipeline can copy it verbatim into
// standalone artifacts.
package extras

import "fmt"

// ValidationFunc checks or transforms a document after schema validation.
type ValidationFunc func(doc map[string]any) (map[string]any, error)

// Error reports a document rejected by an extra validation.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("extra validation failed for %s: %s", e.Field, e.Reason)
}

// DynamicFields rejects project fields that are declared in the `dynamic`
// list but are also defined statically in the same table.
func DynamicFields(doc map[string]any) (map[string]any, error) {
	project, ok := doc["project"].(map[string]any)
	if !ok {
		return doc, nil
	}
	dynamic, ok := project["dynamic"].([]any)
	if !ok {
		return doc, nil
	}
	for _, raw := range dynamic {
		field, ok := raw.(string)
		if !ok || field == "dynamic" {
			continue
		}
		if _, defined := project[field]; defined {
			return nil, &Error{
				Field:  "project." + field,
				Reason: "field is declared dynamic but also defined statically",
			}
		}
	}
	return doc, nil
}

// Default returns the extra validations applied when the caller supplies none.
func Default() []ValidationFunc {
	return []ValidationFunc{DynamicFields}
}
