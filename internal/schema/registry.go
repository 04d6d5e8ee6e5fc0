package schema

import (
	"github.com/manifestval/manifestval-go/internal/utils"
)

// RootSlot marks the composed top-level schema's registry entry.
const RootSlot = "<ROOT>"

// Entry records where a fragment is mounted in the composed document and who
// provided it.
type Entry struct {
	Slot   string // dotted path (e.g. "project", "tool.<name>") or RootSlot
	Origin string // provenance label
	Schema Schema
}

// Registry composes the core manifest schema with plugin tool schemas and
// maps each fragment's `$id` to the fragment. It is read-only once
// constructed; any compatibility failure aborts construction entirely.
type Registry struct {
	entries     map[string]Entry
	ids         []string
	mainID      string
	specVersion string
}

const (
	coreOrigin         = "manifestval-go - core manifest"
	projectTableOrigin = "manifestval-go - project table"
)

// NewRegistry builds a registry from the core resources plus the given
// plugins, in order. A nil logger suppresses collision warnings.
func NewRegistry(plugins []ToolPlugin, log *utils.Logger) (*Registry, error) {
	if log == nil {
		log = utils.NewNopLogger()
	}

	top, err := Load(TopLevelSchema)
	if err != nil {
		return nil, err
	}

	// Mutable working copy of the top-level document. Fragments are mounted
	// into it via `$ref`; it is frozen again before registration.
	doc := deepCopyMap(top.Doc())
	specVersion, _ := doc["$schema"].(string)

	r := &Registry{
		entries:     make(map[string]Entry),
		specVersion: specVersion,
	}

	props, ok := doc["properties"].(map[string]any)
	if !ok {
		props = map[string]any{}
		doc["properties"] = props
	}
	tool, ok := props["tool"].(map[string]any)
	if !ok {
		tool = map[string]any{"type": "object"}
		props["tool"] = tool
	}
	toolProps, ok := tool["properties"].(map[string]any)
	if !ok {
		toolProps = map[string]any{}
		tool["properties"] = toolProps
	}

	project, err := Load(ProjectTableSchema)
	if err != nil {
		return nil, err
	}
	if err := r.ensureCompatibility(ProjectTableSchema, project); err != nil {
		return nil, err
	}
	props["project"] = map[string]any{"$ref": project.ID()}
	r.add(project.ID(), Entry{Slot: "project", Origin: projectTableOrigin, Schema: project})

	for _, p := range plugins {
		pid, name, sch := Identity(p), p.ToolName(), p.ToolSchema()
		if _, taken := toolProps[name]; taken {
			// Last writer wins: only the root's `$ref` pointer is replaced.
			// The earlier fragment stays retrievable by its own `$id`.
			log.Warn().Str("plugin", pid).Str("tool", name).Msg("overwrites tool schema")
		} else {
			log.Debug().Str("plugin", pid).Str("tool", name).Msg("defines tool schema")
		}
		if err := r.ensureCompatibility(name, sch); err != nil {
			return nil, err
		}
		toolProps[name] = map[string]any{"$ref": sch.ID()}
		r.add(sch.ID(), Entry{Slot: "tool." + name, Origin: pid, Schema: sch})
	}

	// The composed root is registered last, keyed under its own `$id`.
	mainID, _ := doc["$id"].(string)
	r.mainID = mainID
	r.add(mainID, Entry{Slot: RootSlot, Origin: coreOrigin, Schema: New(doc)})

	return r, nil
}

func (r *Registry) add(id string, e Entry) {
	if _, exists := r.entries[id]; !exists {
		r.ids = append(r.ids, id)
	}
	r.entries[id] = e
}

// ensureCompatibility applies the registration invariants in order: `$id`
// presence, spec version agreement, global `$id` uniqueness.
func (r *Registry) ensureCompatibility(reference string, s Schema) error {
	if s.ID() == "" {
		return &MissingIDError{Reference: reference}
	}
	if v := s.SpecVersion(); v != "" && v != r.specVersion {
		return &InvalidSchemaVersionError{Reference: reference, Version: v, Expected: r.specVersion}
	}
	if _, exists := r.entries[s.ID()]; exists {
		return &DuplicateIDError{ID: s.ID()}
	}
	return nil
}

// SpecVersion returns the JSON Schema dialect all fragments must agree on.
func (r *Registry) SpecVersion() string {
	return r.specVersion
}

// Main returns the composed top-level schema.
func (r *Registry) Main() Schema {
	return r.entries[r.mainID].Schema
}

// MainID returns the composed top-level schema's `$id`.
func (r *Registry) MainID() string {
	return r.mainID
}

// Get retrieves a registered fragment by `$id`.
func (r *Registry) Get(id string) (Schema, bool) {
	e, ok := r.entries[id]
	return e.Schema, ok
}

// Entry retrieves a fragment's full registry entry by `$id`.
func (r *Registry) Entry(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// IDs returns the registered `$id`s in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Len returns the number of registered fragments.
func (r *Registry) Len() int {
	return len(r.entries)
}
