package vendoring

import (
	"fmt"
	"regexp"
	"strings"
)

const valerrorsImportPath = "github.com/manifestval/manifestval-go/internal/valerrors"

// Replacement is one literal text substitution applied to emitted files.
type Replacement struct {
	Old string
	New string
}

// DefaultReplacements rewrites the generated code's internal import to the
// local artifact and retargets the copied modules' package clauses. Order
// matters; substitutions run top to bottom.
func DefaultReplacements() []Replacement {
	return []Replacement{
		{Old: "\tverr \"" + valerrorsImportPath + "\"\n", New: ""},
		{Old: "verr.", New: ""},
		{Old: "package valerrors", New: "package validation"},
		{Old: "package extras", New: "package validation"},
		{Old: "package formats", New: "package validation"},
	}
}

// applyReplacements applies substitutions in order, skipping identities.
func applyReplacements(text string, reps []Replacement) string {
	for _, r := range reps {
		if r.Old == r.New {
			continue
		}
		text = strings.ReplaceAll(text, r.Old, r.New)
	}
	return text
}

var (
	// validationFnDef structurally matches generated validation function
	// definitions: `validate` or `validate_<suffix>` taking a single `data`
	// parameter.
	validationFnDef = regexp.MustCompile(`(?m)^([\t ]*)func validate(_[A-Za-z0-9_]*)?\(data any\) error \{`)

	// regexTableDef matches the single serialized pattern-table literal.
	regexTableDef = regexp.MustCompile(`(?m)^var regexPatterns = mustDecodeRegexTable\("([^"]*)"\)$`)
)

// noCheckHeaders precede every generated validator file.
var noCheckHeaders = []string{
	"// Code generated by manifestval-go. DO NOT EDIT.",
	"//nolint:all",
	"//lint:file-ignore U1000 generated helpers may be unused",
	"",
	"// *** PLEASE DO NOT MODIFY DIRECTLY: Automatically generated code ***",
	"",
}

// FixGeneratedCode applies the patch passes to the compiler's output in a
// fixed, order-sensitive sequence: signature rewrite, regex table expansion,
// header injection. Each pass is a pure text transformation.
func FixGeneratedCode(code string) (string, error) {
	code = rewriteSignatures(code)
	code, err := expandRegexTable(code)
	if err != nil {
		return "", err
	}
	return prependHeaders(code), nil
}

// rewriteSignatures makes every generated validation function accept the
// custom-format table as a parameter. The generic compiler binds custom
// formats to a host symbol, which cannot survive relocation into a
// standalone module.
func rewriteSignatures(code string) string {
	return validationFnDef.ReplaceAllString(code,
		"${1}func validate${2}(data any, customFormats map[string]func(string) bool) error {")
}

// expandRegexTable replaces the serialized pattern table with explicit
// compileRegex constructions, removing the only non-portable binary payload
// from the emitted artifact.
func expandRegexTable(code string) (string, error) {
	m := regexTableDef.FindStringSubmatch(code)
	if m == nil {
		return code, nil
	}
	table, err := DecodeRegexTable(m[1])
	if err != nil {
		return "", fmt.Errorf("cannot expand regex table: %w", err)
	}
	return strings.Replace(code, m[0], renderRegexTable(table), 1), nil
}

func prependHeaders(code string) string {
	return strings.Join(noCheckHeaders, "\n") + "\n" + code
}
