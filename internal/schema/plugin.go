package schema

import (
	"fmt"
	"reflect"

	"github.com/manifestval/manifestval-go/internal/formats"
)

// ToolPlugin contributes a `tool.<name>` sub-schema to the composed manifest
// schema. The registry reads it once during construction.
type ToolPlugin interface {
	ToolName() string
	ToolSchema() Schema
}

// FormatProvider is implemented by plugins that also carry custom format
// predicates. Plugin formats shadow caller-supplied ones, and later plugins
// shadow earlier ones.
type FormatProvider interface {
	FormatValidators() map[string]formats.FormatFunc
}

// DiscoverFunc returns the ordered plugin list from an external source.
// The registry and validator never perform discovery themselves; callers
// wire a discovery function in explicitly.
type DiscoverFunc func() ([]ToolPlugin, error)

// Descriptor is a ready-made ToolPlugin implementation.
type Descriptor struct {
	Name    string
	Schema  Schema
	Formats map[string]formats.FormatFunc
}

// ToolName returns the name of the tool sub-table the plugin owns.
func (d Descriptor) ToolName() string { return d.Name }

// ToolSchema returns the plugin's schema fragment.
func (d Descriptor) ToolSchema() Schema { return d.Schema }

// FormatValidators returns the plugin's custom format predicates, if any.
func (d Descriptor) FormatValidators() map[string]formats.FormatFunc { return d.Formats }

// Identity derives a stable provenance label for logging from the plugin's
// defining package and type.
func Identity(p ToolPlugin) string {
	t := reflect.TypeOf(p)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return fmt.Sprintf("%T", p)
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.PkgPath() + "." + t.Name()
}
