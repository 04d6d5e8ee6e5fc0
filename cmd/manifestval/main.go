package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifestval/manifestval-go/internal/app"
	"github.com/manifestval/manifestval-go/internal/config"
	"github.com/manifestval/manifestval-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manifestval",
	Short: "Validate project manifest files",
	Long: `Manifestval validates project manifest files against the core schema
plus any tool schemas contributed by plugins.

It can also vendor the validation logic: generate a standalone directory of
Go files that validates manifests without depending on this tool at runtime.`,
	Version: version.Short(),
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.manifestval/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Vendor flags
	vendorCmd.Flags().StringP("output", "O", "", "Output directory for generated files")
	vendorCmd.Flags().String("main-file", "", "Name of the generated wrapper file")
	vendorCmd.Flags().String("tool-license-dir", "", "Directory holding this tool's license file")
	vendorCmd.Flags().String("compiler-license-dir", "", "Directory holding the schema compiler's license file")

	// Bind flags to viper
	_ = viper.BindPFlag("output.directory", vendorCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("vendor.main_file", vendorCmd.Flags().Lookup("main-file"))
	_ = viper.BindPFlag("vendor.tool_license_dir", vendorCmd.Flags().Lookup("tool-license-dir"))
	_ = viper.BindPFlag("vendor.compiler_license_dir", vendorCmd.Flags().Lookup("compiler-license-dir"))

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(vendorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// newApp loads configuration and builds the application
func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return app.New(app.Options{
		Config:  cfg,
		Verbose: verbose,
	})
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a manifest file",
	Long:  "Validates a manifest file (TOML, YAML, or JSON) against the composed schema.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.Check(args[0]); err != nil {
			return err
		}

		fmt.Printf("%s: valid\n", args[0])
		return nil
	},
}

var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Generate standalone validation files",
	Long: `Generates a directory of Go files that validate manifest documents
without depending on this tool at runtime. The exact command line is recorded
in the generated NOTICE file so the output can be reproduced.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		outputDir, _ := cmd.Flags().GetString("output")
		mainFile, _ := cmd.Flags().GetString("main-file")

		dir, err := a.Vendor(outputDir, mainFile, invokedCommand())
		if err != nil {
			return err
		}

		fmt.Printf("Generated validation files in %s\n", dir)
		return nil
	},
}

// invokedCommand reconstructs the command line for the NOTICE record.
func invokedCommand() string {
	args := make([]string, 0, len(os.Args))
	args = append(args, filepath.Base(os.Args[0]))
	args = append(args, os.Args[1:]...)
	return strings.Join(args, " ")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
