package vendoring

import (
	"os"
	"path/filepath"
)

// Writer handles writing generated artifact files to the output directory
type Writer struct {
	baseDir string
}

// NewWriter creates a new artifact writer
func NewWriter(baseDir string) *Writer {
	if baseDir == "" {
		baseDir = DefaultOutputDir
	}
	return &Writer{baseDir: baseDir}
}

// BaseDir returns the output directory
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// Path returns the output path for a file name
func (w *Writer) Path(name string) string {
	return filepath.Join(w.baseDir, name)
}

// WriteFile writes one artifact file
func (w *Writer) WriteFile(name, content string) error {
	return os.WriteFile(w.Path(name), []byte(content), 0644)
}

// EnsureBaseDir creates the base directory if it doesn't exist
func (w *Writer) EnsureBaseDir() error {
	return os.MkdirAll(w.baseDir, 0755)
}
