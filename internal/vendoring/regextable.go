package vendoring

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"fmt"
	"sort"
	"strings"
)

// RegexFlags is the OR-set of compilation flags carried by the generated
// validator's serialized pattern table.
type RegexFlags uint8

const (
	FlagIgnoreCase RegexFlags = 1 << iota
	FlagMultiline
	FlagDotAll
)

// RegexEntry is one compiled pattern in the generated validator's table.
type RegexEntry struct {
	Pattern string
	Flags   RegexFlags
}

// EncodeRegexTable serializes the table the way the generator emits it:
// a gob payload wrapped in base64.
func EncodeRegexTable(table map[string]RegexEntry) (string, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(table); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeRegexTable reverses EncodeRegexTable.
func DecodeRegexTable(blob string) (map[string]RegexEntry, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("regex table payload is not valid base64: %w", err)
	}
	var table map[string]RegexEntry
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&table); err != nil {
		return nil, fmt.Errorf("regex table payload is not a valid gob: %w", err)
	}
	return table, nil
}

// flagExpr renders the OR of an entry's named flags, "0" when none are set.
func flagExpr(f RegexFlags) string {
	var names []string
	if f&FlagIgnoreCase != 0 {
		names = append(names, "reIgnoreCase")
	}
	if f&FlagMultiline != 0 {
		names = append(names, "reMultiline")
	}
	if f&FlagDotAll != 0 {
		names = append(names, "reDotAll")
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, " | ")
}

// renderRegexTable renders the explicit, human-readable replacement for the
// serialized table: one compileRegex construction per pattern, sorted by name.
func renderRegexTable(table map[string]RegexEntry) string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("var regexPatterns = map[string]*regexp.Regexp{\n")
	for _, name := range names {
		e := table[name]
		fmt.Fprintf(&b, "\t%q: compileRegex(%q, %s),\n", name, e.Pattern, flagExpr(e.Flags))
	}
	b.WriteString("}")
	return b.String()
}
