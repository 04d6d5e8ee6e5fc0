package schema

// Schema is an immutable in-memory JSON Schema document. The backing
// document is deep-copied at construction; composition never mutates a
// registered schema — it builds a new container schema that references
// fragments via `$ref`.
type Schema struct {
	doc map[string]any
}

// New wraps a parsed JSON document as an immutable Schema.
func New(doc map[string]any) Schema {
	return Schema{doc: deepCopyMap(doc)}
}

// IsZero reports whether the schema holds no document.
func (s Schema) IsZero() bool {
	return s.doc == nil
}

// ID returns the schema's `$id`, or "" when absent.
func (s Schema) ID() string {
	id, _ := s.doc["$id"].(string)
	return id
}

// SpecVersion returns the declared `$schema` dialect URI, or "" when absent.
func (s Schema) SpecVersion() string {
	v, _ := s.doc["$schema"].(string)
	return v
}

// Has reports whether a top-level keyword is present.
func (s Schema) Has(key string) bool {
	_, ok := s.doc[key]
	return ok
}

// Get returns a top-level keyword value. The returned value shares the
// schema's backing storage and must be treated as read-only.
func (s Schema) Get(key string) any {
	return s.doc[key]
}

// Doc returns the underlying document. It must be treated as read-only.
func (s Schema) Doc() map[string]any {
	return s.doc
}

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
