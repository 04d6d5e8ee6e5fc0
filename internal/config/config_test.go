package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultOutputDir, cfg.Output.Directory)
	assert.Equal(t, DefaultMainFile, cfg.Vendor.MainFile)
	assert.Equal(t, DefaultLicenseDir, cfg.Vendor.ToolLicenseDir)
	assert.Equal(t, DefaultLicenseDir, cfg.Vendor.CompilerLicenseDir)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func TestConfig_Validate_FillsDefaults(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()

	require.NoError(t, err)
	assert.Equal(t, DefaultOutputDir, cfg.Output.Directory)
	assert.Equal(t, DefaultMainFile, cfg.Vendor.MainFile)
	assert.Equal(t, DefaultLicenseDir, cfg.Vendor.ToolLicenseDir)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
}

func TestConfig_Validate_CompilerLicenseDirFollowsToolDir(t *testing.T) {
	cfg := &Config{}
	cfg.Vendor.ToolLicenseDir = "/opt/licenses"

	err := cfg.Validate()

	require.NoError(t, err)
	assert.Equal(t, "/opt/licenses", cfg.Vendor.CompilerLicenseDir)
}

func TestConfig_Validate_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Output.Directory = "./custom"
	cfg.Vendor.MainFile = "entry.go"
	cfg.Logging.Level = "debug"

	err := cfg.Validate()

	require.NoError(t, err)
	assert.Equal(t, "./custom", cfg.Output.Directory)
	assert.Equal(t, "entry.go", cfg.Vendor.MainFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	assert.Contains(t, dir, ".manifestval")
}

func TestConfigFilePath(t *testing.T) {
	path := ConfigFilePath()

	assert.Contains(t, path, "config.yaml")
}
