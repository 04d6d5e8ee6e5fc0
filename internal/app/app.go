// Package app wires configuration, document loading, validation, and
// vendoring into the operations the command layer exposes.
package app

import (
	"fmt"
	"time"

	"github.com/manifestval/manifestval-go/internal/config"
	"github.com/manifestval/manifestval-go/internal/document"
	"github.com/manifestval/manifestval-go/internal/schema"
	"github.com/manifestval/manifestval-go/internal/utils"
	"github.com/manifestval/manifestval-go/internal/validator"
	"github.com/manifestval/manifestval-go/internal/vendoring"
)

// App coordinates the manifest validation operations
type App struct {
	config   *config.Config
	logger   *utils.Logger
	loader   *document.Loader
	plugins  []schema.ToolPlugin
	discover schema.DiscoverFunc
}

// Options contains options for creating an App
type Options struct {
	Config *config.Config

	// Plugins is the explicit plugin set; when nil, Discover supplies it.
	Plugins  []schema.ToolPlugin
	Discover schema.DiscoverFunc

	Verbose bool
}

// New creates a new App with the given configuration
func New(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := cfg.Logging.Level
	if opts.Verbose {
		logLevel = "debug"
	}
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: opts.Verbose,
	})

	return &App{
		config:   cfg,
		logger:   logger,
		loader:   document.NewLoader(),
		plugins:  opts.Plugins,
		discover: opts.Discover,
	}, nil
}

// Logger returns the application logger
func (a *App) Logger() *utils.Logger {
	return a.logger
}

// Check validates the manifest file at path against the composed schema.
// The returned error carries the first failure found.
func (a *App) Check(path string) error {
	startTime := time.Now()

	a.logger.Info().
		Str("file", path).
		Msg("Validating manifest")

	doc, err := a.loader.Load(path)
	if err != nil {
		return err
	}

	v, err := validator.New(validator.Options{
		Plugins:  a.plugins,
		Discover: a.discover,
		Logger:   a.logger,
	})
	if err != nil {
		return err
	}

	if _, err := v.Validate(doc); err != nil {
		return err
	}

	a.logger.Info().
		Str("file", path).
		Dur("duration", time.Since(startTime)).
		Msg("Manifest is valid")
	return nil
}

// Vendor generates standalone validation artifacts in outputDir. The
// originalCmd, when non-empty, is recorded in the artifact's NOTICE.
func (a *App) Vendor(outputDir, mainFile, originalCmd string) (string, error) {
	startTime := time.Now()

	if outputDir == "" {
		outputDir = a.config.Output.Directory
	}
	outputDir = utils.ExpandPath(outputDir)
	if mainFile == "" {
		mainFile = a.config.Vendor.MainFile
	}

	a.logger.Info().
		Str("output", outputDir).
		Msg("Generating validation artifacts")

	pipeline := vendoring.NewPipeline(vendoring.Options{
		OutputDir:          outputDir,
		MainFile:           mainFile,
		OriginalCmd:        originalCmd,
		Plugins:            a.plugins,
		Discover:           a.discover,
		ToolLicenseDir:     a.config.Vendor.ToolLicenseDir,
		CompilerLicenseDir: a.config.Vendor.CompilerLicenseDir,
		Logger:             a.logger,
	})

	dir, err := pipeline.Run()
	if err != nil {
		return "", err
	}

	a.logger.Info().
		Str("output", dir).
		Dur("duration", time.Since(startTime)).
		Msg("Artifacts written")
	return dir, nil
}
