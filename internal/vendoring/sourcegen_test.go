package vendoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manifestval/manifestval-go/internal/schema"
	"github.com/manifestval/manifestval-go/internal/validator"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

func newTestValidator(t *testing.T) *validator.Validator {
	t.Helper()
	fragment := schema.New(map[string]any{
		"$schema":  draft07,
		"$id":      "https://example.com/mytool.json",
		"type":     "object",
		"required": []any{"enabled"},
		"properties": map[string]any{
			"enabled": map[string]any{"type": "boolean"},
			"profile": map[string]any{"type": "string", "format": "project-name"},
		},
	})
	v, err := validator.New(validator.Options{
		Plugins: []schema.ToolPlugin{schema.Descriptor{Name: "mytool", Schema: fragment}},
	})
	require.NoError(t, err)
	return v
}

func TestSourceGenerator_EmitsHostBoundSource(t *testing.T) {
	gen := NewSourceGenerator()

	code, err := gen.CompileToSource(newTestValidator(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "package validation\n"))
	assert.Contains(t, code, "verr \""+valerrorsImportPath+"\"")
	assert.Contains(t, code, "var regexPatterns = mustDecodeRegexTable(")
	assert.Contains(t, code, "func compileRegex(pattern string, flags int) *regexp.Regexp {")
	assert.Contains(t, code, "func checkFormat(name, value string, customFormats map[string]func(string) bool) bool {")
}

func TestSourceGenerator_EmitsOneFunctionPerFragment(t *testing.T) {
	gen := NewSourceGenerator()

	code, err := gen.CompileToSource(newTestValidator(t))
	require.NoError(t, err)

	assert.Contains(t, code, "func validate(data any) error {")
	assert.Contains(t, code, "func validate_project(data any) error {")
	assert.Contains(t, code, "func validate_tool_mytool(data any) error {")
}

func TestSourceGenerator_DispatchesMountedTables(t *testing.T) {
	gen := NewSourceGenerator()

	code, err := gen.CompileToSource(newTestValidator(t))
	require.NoError(t, err)

	assert.Contains(t, code, `if v, ok := obj["project"]; ok {`)
	assert.Contains(t, code, "validate_project(v, customFormats)")
	assert.Contains(t, code, `if v, ok := tool["mytool"]; ok {`)
	assert.Contains(t, code, "validate_tool_mytool(v, customFormats)")
}

func TestSourceGenerator_EmitsSchemaChecks(t *testing.T) {
	gen := NewSourceGenerator()

	code, err := gen.CompileToSource(newTestValidator(t))
	require.NoError(t, err)

	// Required properties of the project table. The message lives inside a
	// generated string literal, so its quotes appear escaped.
	assert.Contains(t, code, `missing property \"name\"`)
	assert.Contains(t, code, `missing property \"version\"`)

	// Format checks route through checkFormat.
	assert.Contains(t, code, `checkFormat("project-name", s, customFormats)`)
	assert.Contains(t, code, `checkFormat("dependency", s, customFormats)`)
	assert.Contains(t, code, `checkFormat("url", s, customFormats)`)

	// Plugin fragment checks.
	assert.Contains(t, code, `missing property \"enabled\"`)
	assert.Contains(t, code, `verr.New("/tool/mytool", "type", "expected object")`)
}

func TestSourceGenerator_PatchedOutputIsDeterministic(t *testing.T) {
	gen := NewSourceGenerator()
	v := newTestValidator(t)

	first, err := gen.CompileToSource(v)
	require.NoError(t, err)
	second, err := gen.CompileToSource(v)
	require.NoError(t, err)

	// The serialized regex table may differ between runs; once expanded
	// into sorted literal form the outputs must agree byte for byte.
	firstFixed, err := FixGeneratedCode(first)
	require.NoError(t, err)
	secondFixed, err := FixGeneratedCode(second)
	require.NoError(t, err)
	assert.Equal(t, firstFixed, secondFixed)
}

func TestFnNameForSlot(t *testing.T) {
	assert.Equal(t, "validate_project", fnNameForSlot("project"))
	assert.Equal(t, "validate_tool_mytool", fnNameForSlot("tool.mytool"))
	assert.Equal(t, "validate_tool_my_tool", fnNameForSlot("tool.my-tool"))
}
