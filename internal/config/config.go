package config

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Vendor  VendorConfig  `mapstructure:"vendor" yaml:"vendor"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// VendorConfig contains vendoring pipeline settings
type VendorConfig struct {
	MainFile           string `mapstructure:"main_file" yaml:"main_file"`
	ToolLicenseDir     string `mapstructure:"tool_license_dir" yaml:"tool_license_dir"`
	CompilerLicenseDir string `mapstructure:"compiler_license_dir" yaml:"compiler_license_dir"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and fills in defaults for missing
// values
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
	if c.Vendor.MainFile == "" {
		c.Vendor.MainFile = DefaultMainFile
	}
	if c.Vendor.ToolLicenseDir == "" {
		c.Vendor.ToolLicenseDir = DefaultLicenseDir
	}
	if c.Vendor.CompilerLicenseDir == "" {
		c.Vendor.CompilerLicenseDir = c.Vendor.ToolLicenseDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
