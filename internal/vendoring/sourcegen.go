package vendoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/manifestval/manifestval-go/internal/schema"
	"github.com/manifestval/manifestval-go/internal/validator"
)

// SourceCompiler renders a configured Validator's composed schema as the
// source of a standalone validation function. The rendered code targets the
// host module: it imports the internal error package and binds custom formats
// to a host symbol. FixGeneratedCode and the replacement pass relocate it.
type SourceCompiler interface {
	CompileToSource(v *validator.Validator) (string, error)
}

// SourceGenerator is the built-in SourceCompiler. It renders one dispatch
// function plus one validation function per registered fragment, covering the
// schema keywords the core resources and typical tool schemas use: object
// shape, required properties, property types, and string formats.
type SourceGenerator struct{}

// NewSourceGenerator creates the default SourceCompiler.
func NewSourceGenerator() *SourceGenerator {
	return &SourceGenerator{}
}

// regexFormats are the built-in formats expressible as plain patterns. They
// travel inside the generated code as a serialized table so the output has no
// compile-time dependency on the formats package.
var regexFormats = map[string]RegexEntry{
	"project-name": {Pattern: `^([a-z0-9]|[a-z0-9][a-z0-9._-]*[a-z0-9])$`, Flags: FlagIgnoreCase},
	"version":      {Pattern: `^v?\d+(\.\d+)*((a|b|rc)\d+)?(\.post\d+)?(\.dev\d+)?$`, Flags: FlagIgnoreCase},
	"dependency":   {Pattern: `^[a-z0-9]([a-z0-9._-]*[a-z0-9])?\s*(\[[a-z0-9,._ -]+\])?\s*([<>=!~][^;]*)?(;.*)?$`, Flags: FlagIgnoreCase},
}

const generatedPrologue = `package validation

import (
	"regexp"

	verr "` + valerrorsImportPath + `"
)

const (
	reIgnoreCase = 1 << iota
	reMultiline
	reDotAll
)

// compileRegex builds a pattern with the given flag set.
func compileRegex(pattern string, flags int) *regexp.Regexp {
	var prefix string
	if flags&reIgnoreCase != 0 {
		prefix += "i"
	}
	if flags&reMultiline != 0 {
		prefix += "m"
	}
	if flags&reDotAll != 0 {
		prefix += "s"
	}
	if prefix != "" {
		pattern = "(?" + prefix + ")" + pattern
	}
	return regexp.MustCompile(pattern)
}

// checkFormat prefers the caller-supplied table and falls back to the
// compiled patterns. Unknown formats pass.
func checkFormat(name, value string, customFormats map[string]func(string) bool) bool {
	if fn, ok := customFormats[name]; ok {
		return fn(value)
	}
	if re, ok := regexPatterns[name]; ok {
		return re.MatchString(value)
	}
	return true
}

`

// CompileToSource renders the validator's full schema graph.
func (g *SourceGenerator) CompileToSource(v *validator.Validator) (string, error) {
	reg := v.Registry()

	blob, err := EncodeRegexTable(regexFormats)
	if err != nil {
		return "", fmt.Errorf("cannot serialize regex formats: %w", err)
	}

	var b strings.Builder
	b.WriteString(generatedPrologue)
	fmt.Fprintf(&b, "var regexPatterns = mustDecodeRegexTable(%q)\n\n", blob)

	g.emitDispatcher(&b, reg)

	for _, id := range activeIDs(reg) {
		entry, _ := reg.Entry(id)
		if entry.Slot == schema.RootSlot {
			continue
		}
		g.emitFragment(&b, fnNameForSlot(entry.Slot), "/"+slotPointer(entry.Slot), entry.Schema)
	}

	return b.String(), nil
}

// emitDispatcher renders the entry point routing each mounted table to its
// fragment function.
func (g *SourceGenerator) emitDispatcher(b *strings.Builder, reg *schema.Registry) {
	b.WriteString("func validate(data any) error {\n")
	b.WriteString("\tobj, ok := data.(map[string]any)\n")
	b.WriteString("\tif !ok {\n")
	b.WriteString("\t\treturn verr.New(\"\", \"type\", \"expected object\")\n")
	b.WriteString("\t}\n")
	b.WriteString("\tif v, ok := obj[\"project\"]; ok {\n")
	b.WriteString("\t\tif err := validate_project(v, customFormats); err != nil {\n")
	b.WriteString("\t\t\treturn err\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t}\n")

	names := toolNames(reg)
	if len(names) > 0 {
		b.WriteString("\tif tool, ok := obj[\"tool\"].(map[string]any); ok {\n")
		for _, name := range names {
			fmt.Fprintf(b, "\t\tif v, ok := tool[%q]; ok {\n", name)
			fmt.Fprintf(b, "\t\t\tif err := %s(v, customFormats); err != nil {\n", fnNameForSlot("tool."+name))
			b.WriteString("\t\t\t\treturn err\n")
			b.WriteString("\t\t\t}\n")
			b.WriteString("\t\t}\n")
		}
		b.WriteString("\t}\n")
	}
	b.WriteString("\treturn nil\n}\n\n")
}

// emitFragment renders one fragment's validation function.
func (g *SourceGenerator) emitFragment(b *strings.Builder, fnName, pointer string, s schema.Schema) {
	doc := s.Doc()

	required := requiredNames(doc)
	props, _ := doc["properties"].(map[string]any)

	fmt.Fprintf(b, "func %s(data any) error {\n", fnName)
	b.WriteString("\tobj, ok := data.(map[string]any)\n")
	b.WriteString("\tif !ok {\n")
	fmt.Fprintf(b, "\t\treturn verr.New(%q, \"type\", \"expected object\")\n", pointer)
	b.WriteString("\t}\n")
	if len(required) == 0 && len(props) == 0 {
		b.WriteString("\t_ = obj\n")
	}

	for _, req := range required {
		fmt.Fprintf(b, "\tif _, ok := obj[%q]; !ok {\n", req)
		fmt.Fprintf(b, "\t\treturn verr.New(%q, \"required\", %q)\n", pointer, fmt.Sprintf("missing property %q", req))
		b.WriteString("\t}\n")
	}

	for _, name := range sortedKeys(props) {
		ps, ok := props[name].(map[string]any)
		if !ok {
			continue
		}
		g.emitProperty(b, pointer+"/"+name, name, ps)
	}

	b.WriteString("\treturn nil\n}\n\n")
}

// emitProperty renders the checks for one top-level property of a fragment.
func (g *SourceGenerator) emitProperty(b *strings.Builder, pointer, name string, ps map[string]any) {
	typ, _ := ps["type"].(string)
	format, _ := ps["format"].(string)

	switch typ {
	case "string":
		fmt.Fprintf(b, "\tif raw, ok := obj[%q]; ok {\n", name)
		g.emitStringCheck(b, "\t\t", "raw", pointer, format)
		b.WriteString("\t}\n")

	case "boolean":
		fmt.Fprintf(b, "\tif raw, ok := obj[%q]; ok {\n", name)
		b.WriteString("\t\tif _, ok := raw.(bool); !ok {\n")
		fmt.Fprintf(b, "\t\t\treturn verr.New(%q, \"type\", \"expected boolean\")\n", pointer)
		b.WriteString("\t\t}\n")
		b.WriteString("\t}\n")

	case "array":
		items, _ := ps["items"].(map[string]any)
		itemType, _ := items["type"].(string)
		itemFormat, _ := items["format"].(string)
		fmt.Fprintf(b, "\tif raw, ok := obj[%q]; ok {\n", name)
		b.WriteString("\t\tlist, ok := raw.([]any)\n")
		b.WriteString("\t\tif !ok {\n")
		fmt.Fprintf(b, "\t\t\treturn verr.New(%q, \"type\", \"expected array\")\n", pointer)
		b.WriteString("\t\t}\n")
		switch itemType {
		case "string":
			b.WriteString("\t\tfor _, item := range list {\n")
			if itemFormat != "" {
				b.WriteString("\t\t\ts, ok := item.(string)\n")
				b.WriteString("\t\t\tif !ok {\n")
				fmt.Fprintf(b, "\t\t\t\treturn verr.New(%q, \"items\", \"expected array of strings\")\n", pointer)
				b.WriteString("\t\t\t}\n")
				g.emitFormatCheck(b, "\t\t\t", "s", pointer, itemFormat)
			} else {
				b.WriteString("\t\t\tif _, ok := item.(string); !ok {\n")
				fmt.Fprintf(b, "\t\t\t\treturn verr.New(%q, \"items\", \"expected array of strings\")\n", pointer)
				b.WriteString("\t\t\t}\n")
			}
			b.WriteString("\t\t}\n")
		case "object":
			itemProps, _ := items["properties"].(map[string]any)
			b.WriteString("\t\tfor _, item := range list {\n")
			b.WriteString("\t\t\tentry, ok := item.(map[string]any)\n")
			b.WriteString("\t\t\tif !ok {\n")
			fmt.Fprintf(b, "\t\t\t\treturn verr.New(%q, \"items\", \"expected array of objects\")\n", pointer)
			b.WriteString("\t\t\t}\n")
			for _, pn := range sortedKeys(itemProps) {
				ips, ok := itemProps[pn].(map[string]any)
				if !ok {
					continue
				}
				if it, _ := ips["type"].(string); it != "string" {
					continue
				}
				ifmt, _ := ips["format"].(string)
				fmt.Fprintf(b, "\t\t\tif raw, ok := entry[%q]; ok {\n", pn)
				g.emitStringCheck(b, "\t\t\t\t", "raw", pointer+"/"+pn, ifmt)
				b.WriteString("\t\t\t}\n")
			}
			b.WriteString("\t\t}\n")
		default:
			b.WriteString("\t\t_ = list\n")
		}
		b.WriteString("\t}\n")

	case "object":
		ap, _ := ps["additionalProperties"].(map[string]any)
		apType, _ := ap["type"].(string)
		apFormat, _ := ap["format"].(string)
		fmt.Fprintf(b, "\tif raw, ok := obj[%q]; ok {\n", name)
		b.WriteString("\t\tm, ok := raw.(map[string]any)\n")
		b.WriteString("\t\tif !ok {\n")
		fmt.Fprintf(b, "\t\t\treturn verr.New(%q, \"type\", \"expected object\")\n", pointer)
		b.WriteString("\t\t}\n")
		if apType == "string" {
			b.WriteString("\t\tfor _, value := range m {\n")
			if apFormat != "" {
				b.WriteString("\t\t\ts, ok := value.(string)\n")
				b.WriteString("\t\t\tif !ok {\n")
				fmt.Fprintf(b, "\t\t\t\treturn verr.New(%q, \"additionalProperties\", \"expected string values\")\n", pointer)
				b.WriteString("\t\t\t}\n")
				g.emitFormatCheck(b, "\t\t\t", "s", pointer, apFormat)
			} else {
				b.WriteString("\t\t\tif _, ok := value.(string); !ok {\n")
				fmt.Fprintf(b, "\t\t\t\treturn verr.New(%q, \"additionalProperties\", \"expected string values\")\n", pointer)
				b.WriteString("\t\t\t}\n")
			}
			b.WriteString("\t\t}\n")
		} else {
			b.WriteString("\t\t_ = m\n")
		}
		b.WriteString("\t}\n")
	}
}

// emitStringCheck renders a type assertion on a string value, binding it only
// when a format check needs it afterwards.
func (g *SourceGenerator) emitStringCheck(b *strings.Builder, indent, varName, pointer, format string) {
	if format != "" {
		fmt.Fprintf(b, "%ss, ok := %s.(string)\n", indent, varName)
		fmt.Fprintf(b, "%sif !ok {\n", indent)
		fmt.Fprintf(b, "%s\treturn verr.New(%q, \"type\", \"expected string\")\n", indent, pointer)
		fmt.Fprintf(b, "%s}\n", indent)
		g.emitFormatCheck(b, indent, "s", pointer, format)
		return
	}
	fmt.Fprintf(b, "%sif _, ok := %s.(string); !ok {\n", indent, varName)
	fmt.Fprintf(b, "%s\treturn verr.New(%q, \"type\", \"expected string\")\n", indent, pointer)
	fmt.Fprintf(b, "%s}\n", indent)
}

func (g *SourceGenerator) emitFormatCheck(b *strings.Builder, indent, varName, pointer, format string) {
	if format == "" {
		return
	}
	fmt.Fprintf(b, "%sif !checkFormat(%q, %s, customFormats) {\n", indent, format, varName)
	fmt.Fprintf(b, "%s\treturn verr.New(%q, \"format\", %q)\n", indent, pointer, fmt.Sprintf("invalid %q format", format))
	fmt.Fprintf(b, "%s}\n", indent)
}

// fnNameForSlot derives a fragment's function name from its mount slot.
func fnNameForSlot(slot string) string {
	var b strings.Builder
	b.WriteString("validate_")
	for _, r := range slot {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// slotPointer maps a mount slot to the document pointer it guards.
func slotPointer(slot string) string {
	return strings.ReplaceAll(slot, ".", "/")
}

// activeIDs filters the registry down to each slot's current occupant, so a
// superseded tool fragment is never rendered alongside its replacement.
func activeIDs(reg *schema.Registry) []string {
	winners := make(map[string]string)
	for _, id := range reg.IDs() {
		entry, _ := reg.Entry(id)
		winners[entry.Slot] = id
	}
	var out []string
	for _, id := range reg.IDs() {
		entry, _ := reg.Entry(id)
		if winners[entry.Slot] == id {
			out = append(out, id)
		}
	}
	return out
}

func toolNames(reg *schema.Registry) []string {
	var names []string
	for _, id := range activeIDs(reg) {
		entry, _ := reg.Entry(id)
		if rest, ok := strings.CutPrefix(entry.Slot, "tool."); ok {
			names = append(names, rest)
		}
	}
	sort.Strings(names)
	return names
}

func requiredNames(doc map[string]any) []string {
	raw, _ := doc["required"].([]any)
	names := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	return names
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
