// Package validator validates manifest documents against the schema graph
// composed by the schema registry. A Validator owns the format-function and
// post-validation-hook sets, compiles the composed schema once on first use,
// and runs the validate → post-process pipeline per call.
package validator

import (
	"sync"

	"github.com/manifestval/manifestval-go/internal/extras"
	"github.com/manifestval/manifestval-go/internal/formats"
	"github.com/manifestval/manifestval-go/internal/schema"
	"github.com/manifestval/manifestval-go/internal/utils"
)

// Options contains options for creating a Validator
type Options struct {
	// Plugins is the ordered plugin set. When nil and Discover is set, the
	// discovery collaborator supplies the list.
	Plugins []schema.ToolPlugin

	// Discover populates the plugin list when Plugins is nil.
	Discover schema.DiscoverFunc

	// Formats seeds the format table; nil means formats.Builtin(). Pass an
	// empty non-nil map to start from no formats at all.
	Formats map[string]formats.FormatFunc

	// ExtraValidations run after schema validation, in order; nil means
	// extras.Default(). Plugin-contributed extra validations are deliberately
	// unsupported: third-party code must not run on every validation call.
	ExtraValidations []extras.ValidationFunc

	// Compiler compiles the composed schema; nil means the jsonschema adapter.
	Compiler Compiler

	Logger *utils.Logger
}

// Validator validates manifest documents against the composed schema.
// The compiled validator and the merged format table are each built at most
// once, guarded for concurrent first use.
type Validator struct {
	plugins   []schema.ToolPlugin
	registry  *schema.Registry
	handler   *schema.RefHandler
	compiler  Compiler
	inFormats map[string]formats.FormatFunc
	extraFns  []extras.ValidationFunc

	formatsOnce sync.Once
	formats     map[string]formats.FormatFunc

	compileOnce sync.Once
	compiled    ValidateFunc
	compileErr  error
}

// New creates a new Validator. Registry construction runs here, so any
// schema compatibility failure surfaces immediately.
func New(opts Options) (*Validator, error) {
	plugins := opts.Plugins
	if plugins == nil && opts.Discover != nil {
		discovered, err := opts.Discover()
		if err != nil {
			return nil, err
		}
		plugins = discovered
	}

	registry, err := schema.NewRegistry(plugins, opts.Logger)
	if err != nil {
		return nil, err
	}

	inFormats := opts.Formats
	if inFormats == nil {
		inFormats = formats.Builtin()
	}
	extraFns := opts.ExtraValidations
	if extraFns == nil {
		extraFns = extras.Default()
	}
	compiler := opts.Compiler
	if compiler == nil {
		compiler = NewJSONSchemaCompiler()
	}

	return &Validator{
		plugins:   plugins,
		registry:  registry,
		handler:   schema.NewRefHandler(registry),
		compiler:  compiler,
		inFormats: inFormats,
		extraFns:  extraFns,
	}, nil
}

// Schema returns the composed top-level schema.
func (v *Validator) Schema() schema.Schema {
	return v.registry.Main()
}

// SpecVersion returns the JSON Schema dialect in use.
func (v *Validator) SpecVersion() string {
	return v.registry.SpecVersion()
}

// Registry returns the underlying schema registry.
func (v *Validator) Registry() *schema.Registry {
	return v.registry
}

// Handler returns the reference handler routing `$ref` lookups to the registry.
func (v *Validator) Handler() *schema.RefHandler {
	return v.handler
}

// Plugins returns the plugin set, in order.
func (v *Validator) Plugins() []schema.ToolPlugin {
	out := make([]schema.ToolPlugin, len(v.plugins))
	copy(out, v.plugins)
	return out
}

// Formats returns the merged format table: caller-supplied formats first,
// then each plugin's own validators in plugin order. Later entries win, so
// plugin formats shadow built-ins and later plugins shadow earlier ones.
// Computed once and cached; the result must be treated as read-only.
func (v *Validator) Formats() map[string]formats.FormatFunc {
	v.formatsOnce.Do(func() {
		merged := make(map[string]formats.FormatFunc, len(v.inFormats))
		for name, fn := range v.inFormats {
			merged[name] = fn
		}
		for _, p := range v.plugins {
			provider, ok := p.(schema.FormatProvider)
			if !ok {
				continue
			}
			for name, fn := range provider.FormatValidators() {
				merged[name] = fn
			}
		}
		v.formats = merged
	})
	return v.formats
}

// ExtraValidations returns the post-validation functions, in order.
func (v *Validator) ExtraValidations() []extras.ValidationFunc {
	out := make([]extras.ValidationFunc, len(v.extraFns))
	copy(out, v.extraFns)
	return out
}

// Get retrieves a registered schema fragment by `$id`.
func (v *Validator) Get(id string) (schema.Schema, bool) {
	return v.registry.Get(id)
}

// Validate checks a document against the composed schema, then threads it
// through the extra validations in order, each receiving the previous
// result. The compiled validator is built on first use and reused
// unconditionally for the Validator's lifetime.
func (v *Validator) Validate(doc map[string]any) (map[string]any, error) {
	v.compileOnce.Do(func() {
		v.compiled, v.compileErr = v.compiler.Compile(v.Schema(), v.handler, v.Formats())
	})
	if v.compileErr != nil {
		return nil, v.compileErr
	}

	if err := v.compiled(doc); err != nil {
		return nil, err
	}

	out := doc
	for _, fn := range v.extraFns {
		next, err := fn(out)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}
