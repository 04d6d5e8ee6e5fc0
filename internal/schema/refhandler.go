package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// RefHandler forces every `$ref` lookup to resolve against the in-memory
// registry instead of performing network or file retrieval. It claims to
// handle any URI scheme it is asked about, remembering unseen ones, and the
// resolution function it returns ignores URI semantics entirely: `$ref`
// values must match a registry key exactly.
type RefHandler struct {
	registry *Registry
	schemes  []string
}

// NewRefHandler creates a handler resolving against the given registry.
func NewRefHandler(r *Registry) *RefHandler {
	return &RefHandler{
		registry: r,
		schemes:  []string{"http", "https"},
	}
}

// Contains reports whether the handler resolves the given URI scheme.
// It always does; unseen schemes are memoized as a side effect.
func (h *RefHandler) Contains(scheme string) bool {
	for _, s := range h.schemes {
		if s == scheme {
			return true
		}
	}
	h.schemes = append(h.schemes, scheme)
	return true
}

// Schemes returns the schemes the handler has claimed so far.
func (h *RefHandler) Schemes() []string {
	out := make([]string, len(h.schemes))
	copy(out, h.schemes)
	return out
}

// Resolver returns the resolution function for a scheme. All schemes share
// the same function: a direct registry lookup by the full reference string.
func (h *RefHandler) Resolver(scheme string) func(uri string) (Schema, error) {
	h.Contains(scheme)
	return func(uri string) (Schema, error) {
		s, ok := h.registry.Get(uri)
		if !ok {
			return Schema{}, fmt.Errorf("schema %q not found in registry", uri)
		}
		return s, nil
	}
}

// Load adapts registry resolution to a schema compiler's URL-loader hook.
func (h *RefHandler) Load(url string) (io.ReadCloser, error) {
	scheme, _, _ := strings.Cut(url, ":")
	resolve := h.Resolver(scheme)
	s, err := resolve(url)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(s.Doc())
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
