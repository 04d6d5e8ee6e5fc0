// Package vendoring produces standalone validation artifacts: a directory of
// generated Go files that validate manifest documents without depending on
// this module at runtime. The pipeline compiles the composed schema to
// source, patches the compiler's host-bound output into relocatable form,
// copies the support modules alongside it, and records attribution.
package vendoring

import (
	"errors"
	"io/fs"

	"github.com/manifestval/manifestval-go/internal/extras"
	"github.com/manifestval/manifestval-go/internal/formats"
	"github.com/manifestval/manifestval-go/internal/schema"
	"github.com/manifestval/manifestval-go/internal/utils"
	"github.com/manifestval/manifestval-go/internal/valerrors"
	"github.com/manifestval/manifestval-go/internal/validator"
)

// Artifact file names. The set is fixed: consumers of generated directories
// rely on it.
const (
	ValidationsFile = "schema_validations.go"
	ErrorsFile      = "schema_errors.go"
	ExtrasFile      = "extra_validations.go"
	FormatsFile     = "formats.go"
	NoticeFile      = "NOTICE"
	MarkerFile      = "doc.go"

	// DefaultMainFile is the default name for the wrapper entry point.
	DefaultMainFile = "validate.go"

	// DefaultOutputDir is where artifacts land when no directory is given.
	DefaultOutputDir = "./vendored"
)

const packageMarker = `// Package validation validates project manifest documents.
package validation
`

const mainFileStub = `package validation

// TODO: generate the thin validate(data) wrapper from a template.
`

// Options contains options for a vendoring run
type Options struct {
	// OutputDir receives the artifact files. Defaults to DefaultOutputDir.
	OutputDir string

	// MainFile names the wrapper entry point. Defaults to DefaultMainFile.
	MainFile string

	// OriginalCmd, when set, is the command line recorded in the NOTICE so
	// the artifact can be reproduced. Leave empty for API-driven runs.
	OriginalCmd string

	// Plugins and Discover configure the validator; see validator.Options.
	Plugins  []schema.ToolPlugin
	Discover schema.DiscoverFunc

	// Replacements are applied to every emitted file after the defaults.
	Replacements []Replacement

	// Compiler renders the validation source; nil means the built-in
	// generator.
	Compiler SourceCompiler

	// ToolLicenseDir is searched for this project's license file.
	// Defaults to ".".
	ToolLicenseDir string

	// CompilerLicenseDir is searched for the schema compiler's license file.
	// Defaults to ToolLicenseDir.
	CompilerLicenseDir string

	Logger *utils.Logger
}

// Pipeline runs the vendoring steps in a fixed order.
type Pipeline struct {
	opts Options
	log  *utils.Logger
}

// NewPipeline creates a new vendoring pipeline
func NewPipeline(opts Options) *Pipeline {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.MainFile == "" {
		opts.MainFile = DefaultMainFile
	}
	if opts.ToolLicenseDir == "" {
		opts.ToolLicenseDir = "."
	}
	if opts.CompilerLicenseDir == "" {
		opts.CompilerLicenseDir = opts.ToolLicenseDir
	}
	if opts.Compiler == nil {
		opts.Compiler = NewSourceGenerator()
	}
	log := opts.Logger
	if log == nil {
		log = utils.NewNopLogger()
	}
	return &Pipeline{opts: opts, log: log}
}

// Run executes the pipeline and returns the output directory. License
// discovery runs before anything is written: an artifact that cannot carry
// attribution must not be produced at all.
func (p *Pipeline) Run() (string, error) {
	toolLicense, err := p.findLicense("manifestval-go", p.opts.ToolLicenseDir)
	if err != nil {
		return "", err
	}
	compilerLicense, err := p.findLicense("schema compiler", p.opts.CompilerLicenseDir)
	if err != nil {
		return "", err
	}

	v, err := validator.New(validator.Options{
		Plugins:  p.opts.Plugins,
		Discover: p.opts.Discover,
		Logger:   p.log,
	})
	if err != nil {
		return "", err
	}

	writer := NewWriter(p.opts.OutputDir)
	if err := writer.EnsureBaseDir(); err != nil {
		return "", err
	}

	reps := append(DefaultReplacements(), p.opts.Replacements...)

	code, err := p.opts.Compiler.CompileToSource(v)
	if err != nil {
		return "", err
	}
	code, err = FixGeneratedCode(code)
	if err != nil {
		return "", err
	}
	if err := p.write(writer, ValidationsFile, applyReplacements(code, reps)); err != nil {
		return "", err
	}

	copies := []struct {
		name   string
		source string
	}{
		{ErrorsFile, valerrors.Source},
		{FormatsFile, formats.Source},
		{ExtrasFile, extras.Source},
	}
	for _, c := range copies {
		if err := p.write(writer, c.name, applyReplacements(c.source, reps)); err != nil {
			return "", err
		}
	}

	if err := p.write(writer, p.opts.MainFile, mainFileStub); err != nil {
		return "", err
	}

	notice, err := renderNotice(p.opts.OriginalCmd, p.opts.MainFile, toolLicense, compilerLicense)
	if err != nil {
		return "", err
	}
	if err := p.write(writer, NoticeFile, notice); err != nil {
		return "", err
	}

	if err := p.write(writer, MarkerFile, packageMarker); err != nil {
		return "", err
	}

	p.log.Info().Str("dir", writer.BaseDir()).Msg("Vendoring complete")
	return writer.BaseDir(), nil
}

func (p *Pipeline) findLicense(dependency, dir string) (string, error) {
	license, err := FindLicense(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NewAttributionMissingError(dependency, dir)
		}
		return "", err
	}
	return license, nil
}

func (p *Pipeline) write(w *Writer, name, content string) error {
	if err := w.WriteFile(name, content); err != nil {
		return err
	}
	p.log.Debug().Str("file", w.Path(name)).Msg("Wrote artifact")
	return nil
}
