package document

import "errors"

// Sentinel errors for the document package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the file is not valid TOML, YAML, or JSON
	ErrInvalidFormat = errors.New("manifest must be valid TOML, YAML, or JSON")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .toml, .yaml, .yml, or .json)")
)
