package schema

import (
	"embed"
	"encoding/json"
	"fmt"
)

// Logical names of the core schema resources.
const (
	TopLevelSchema     = "manifest"
	ProjectTableSchema = "project_table"
)

// SchemaExt is the suffix appended to logical resource names.
const SchemaExt = ".schema.json"

//go:embed resources
var resources embed.FS

// Load reads a named core schema resource and parses it into an immutable
// Schema.
func Load(name string) (Schema, error) {
	data, err := resources.ReadFile("resources/" + name + SchemaExt)
	if err != nil {
		return Schema{}, fmt.Errorf("schema resource %q not found: %w", name, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Schema{}, fmt.Errorf("schema resource %q is not valid JSON: %w", name, err)
	}
	return New(doc), nil
}
