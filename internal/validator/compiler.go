package validator

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/manifestval/manifestval-go/internal/formats"
	"github.com/manifestval/manifestval-go/internal/schema"
	"github.com/manifestval/manifestval-go/internal/valerrors"
)

// ValidateFunc is a compiled validator. It returns nil when the document
// conforms to the composed schema.
type ValidateFunc func(doc map[string]any) error

// Compiler turns the composed schema graph into a callable validator. The
// low-level JSON Schema compiler is an external collaborator behind this
// interface; tests swap in counting fakes.
type Compiler interface {
	Compile(main schema.Schema, refs *schema.RefHandler, fmts map[string]formats.FormatFunc) (ValidateFunc, error)
}

// JSONSchemaCompiler adapts github.com/santhosh-tekuri/jsonschema.
type JSONSchemaCompiler struct{}

// NewJSONSchemaCompiler creates the default Compiler.
func NewJSONSchemaCompiler() *JSONSchemaCompiler {
	return &JSONSchemaCompiler{}
}

// Compile compiles the composed schema with format assertion enabled and all
// `$ref` retrieval routed through the handler.
func (c *JSONSchemaCompiler) Compile(main schema.Schema, refs *schema.RefHandler, fmts map[string]formats.FormatFunc) (ValidateFunc, error) {
	jc := jsonschema.NewCompiler()
	jc.Draft = jsonschema.Draft7
	jc.AssertFormat = true
	jc.LoadURL = refs.Load

	for name, fn := range fmts {
		fn := fn
		jc.Formats[name] = func(v interface{}) bool {
			s, ok := v.(string)
			if !ok {
				// format applies to strings only
				return true
			}
			return fn(s)
		}
	}

	data, err := json.Marshal(main.Doc())
	if err != nil {
		return nil, err
	}
	if err := jc.AddResource(main.ID(), bytes.NewReader(data)); err != nil {
		return nil, err
	}
	compiled, err := jc.Compile(main.ID())
	if err != nil {
		return nil, err
	}

	return func(doc map[string]any) error {
		if err := compiled.Validate(doc); err != nil {
			return asValidationError(err)
		}
		return nil
	}, nil
}

// asValidationError converts the compiler's error tree into a
// valerrors.ValidationError pointing at the deepest failing location.
func asValidationError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return &valerrors.ValidationError{
		Path:    leaf.InstanceLocation,
		Rule:    leaf.KeywordLocation,
		Message: leaf.Message,
	}
}
