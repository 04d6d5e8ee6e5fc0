package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader loads manifest documents into the generic map form validators
// consume
type Loader struct{}

// NewLoader creates a new document loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest document from the given path
func (l *Loader) Load(path string) (map[string]any, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a manifest document from raw bytes. Keys of nested
// tables decode to map[string]any at every level so the result can be walked
// uniformly regardless of the source format.
func (l *Loader) LoadFromBytes(data []byte, ext string) (map[string]any, error) {
	ext = strings.ToLower(ext)

	var doc map[string]any
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
