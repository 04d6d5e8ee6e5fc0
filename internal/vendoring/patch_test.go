package vendoring

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixGeneratedCode_RewritesSignatures(t *testing.T) {
	in := strings.Join([]string{
		"package validation",
		"",
		"func validate(data any) error {",
		"\treturn nil",
		"}",
		"",
		"func validate_project(data any) error {",
		"\treturn nil",
		"}",
	}, "\n")

	out, err := FixGeneratedCode(in)
	require.NoError(t, err)

	assert.Contains(t, out, "func validate(data any, customFormats map[string]func(string) bool) error {")
	assert.Contains(t, out, "func validate_project(data any, customFormats map[string]func(string) bool) error {")
	assert.NotContains(t, out, "func validate(data any) error {")
}

func TestFixGeneratedCode_PreservesIndentation(t *testing.T) {
	in := "\tfunc validate_tool_x(data any) error {\n\t\treturn nil\n\t}\n"

	out, err := FixGeneratedCode(in)
	require.NoError(t, err)

	assert.Contains(t, out, "\tfunc validate_tool_x(data any, customFormats map[string]func(string) bool) error {")
}

func TestFixGeneratedCode_LeavesUnrelatedFunctionsAlone(t *testing.T) {
	in := "func validateData(data any) error {\n\treturn nil\n}\n"

	out, err := FixGeneratedCode(in)
	require.NoError(t, err)

	assert.Contains(t, out, "func validateData(data any) error {")
	assert.NotContains(t, out, "validateData(data any, customFormats")
}

func TestFixGeneratedCode_ExpandsRegexTable(t *testing.T) {
	blob, err := EncodeRegexTable(map[string]RegexEntry{
		"version":      {Pattern: `^v?\d+$`, Flags: FlagIgnoreCase | FlagMultiline},
		"project-name": {Pattern: `^[a-z]+$`, Flags: 0},
	})
	require.NoError(t, err)

	in := fmt.Sprintf("package validation\n\nvar regexPatterns = mustDecodeRegexTable(%q)\n", blob)

	out, err := FixGeneratedCode(in)
	require.NoError(t, err)

	assert.NotContains(t, out, "mustDecodeRegexTable")
	assert.Contains(t, out, "var regexPatterns = map[string]*regexp.Regexp{")
	assert.Contains(t, out, `"project-name": compileRegex("^[a-z]+$", 0),`)
	assert.Contains(t, out, `"version": compileRegex("^v?\\d+$", reIgnoreCase | reMultiline),`)

	// Sorted by name.
	assert.Less(t, strings.Index(out, `"project-name"`), strings.Index(out, `"version"`))
}

func TestFixGeneratedCode_BadRegexTablePayload(t *testing.T) {
	in := "var regexPatterns = mustDecodeRegexTable(\"not base64!!\")\n"

	_, err := FixGeneratedCode(in)

	assert.Error(t, err)
}

func TestFixGeneratedCode_PrependsHeaders(t *testing.T) {
	out, err := FixGeneratedCode("package validation\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "// Code generated by manifestval-go. DO NOT EDIT.\n"))
	assert.Contains(t, out, "*** PLEASE DO NOT MODIFY DIRECTLY: Automatically generated code ***")
	assert.Contains(t, out, "package validation")
}

func TestApplyReplacements_InOrder(t *testing.T) {
	out := applyReplacements("abc", []Replacement{
		{Old: "a", New: "b"},
		{Old: "bb", New: "x"},
	})

	assert.Equal(t, "xc", out)
}

func TestApplyReplacements_SkipsIdentity(t *testing.T) {
	out := applyReplacements("abc", []Replacement{{Old: "a", New: "a"}})

	assert.Equal(t, "abc", out)
}

func TestDefaultReplacements(t *testing.T) {
	in := strings.Join([]string{
		"package valerrors",
		"",
		"import (",
		"\tverr \"" + valerrorsImportPath + "\"",
		")",
		"",
		"var _ = verr.New(\"\", \"\", \"\")",
	}, "\n")

	out := applyReplacements(in, DefaultReplacements())

	assert.Contains(t, out, "package validation")
	assert.NotContains(t, out, valerrorsImportPath)
	assert.NotContains(t, out, "verr.")
	assert.Contains(t, out, "var _ = New(")
}
