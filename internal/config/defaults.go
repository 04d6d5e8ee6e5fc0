package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Output defaults
	DefaultOutputDir = "./vendored"

	// Vendor defaults
	DefaultMainFile   = "validate.go"
	DefaultLicenseDir = "."

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".manifestval"
	}
	return filepath.Join(home, ".manifestval")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Directory: DefaultOutputDir,
		},
		Vendor: VendorConfig{
			MainFile:           DefaultMainFile,
			ToolLicenseDir:     DefaultLicenseDir,
			CompilerLicenseDir: DefaultLicenseDir,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
