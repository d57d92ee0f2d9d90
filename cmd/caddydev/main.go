package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"caddydev-cli/internal/app"
	"caddydev-cli/internal/config"
	"caddydev-cli/internal/interactive"
	"caddydev-cli/internal/runner"
	"caddydev-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "caddydev",
	Short: "A CLI tool for generating local Caddy dev configs",
	Long: `Caddydev generates a project's Caddyfile.dev from a Caddyfile.template by
substituting {{key}} placeholders with values given on the command line.

It can also maintain a shared import configuration under ~/.config/caddydev
(one import directive per registered project folder) and ask a running Caddy
instance to reload it.`,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Caddyfile.dev from a template",
	Long: `Generate reads the template, replaces every {{key}} placeholder for which a
--var key=value was given, and writes the result to <output-dir>/Caddyfile.dev.
Placeholders without a matching --var are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Generate(request)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively configure the imported project folders",
	Long: `Init prompts for project folder paths or glob patterns, one per line, and
writes an import configuration to ~/.config/caddydev/Caddyfile. Plain folders
get a one-level glob appended (<folder>/*/Caddyfile.dev); entries that already
contain a wildcard are imported verbatim.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return fmt.Errorf("invalid config flag: %w", err)
		}

		return app.Init(interactive.NewPrompter(), config.ImportFilePath(), configPath)
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload Caddy with the generated import configuration",
	Long:  "Reload invokes 'caddy reload --config ~/.config/caddydev/Caddyfile' and reports the result.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return fmt.Errorf("invalid config flag: %w", err)
		}

		return app.Reload(runner.NewExecRunner(), config.ImportFilePath(), configPath)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("caddydev version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reloadCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "settings file path (default ~/.config/caddydev/config.toml)")

	// Generate command flags
	generateCmd.Flags().StringP("output-dir", "o", "", "output directory for Caddyfile.dev (default: current directory)")
	generateCmd.Flags().StringP("template", "t", "", "template file path (default: <output-dir>/Caddyfile.template)")
	generateCmd.Flags().StringArray("var", []string{}, "variable in key=value format (can be repeated)")
}

// buildRequestFromFlags constructs a GenerateRequest from command flags
func buildRequestFromFlags(cmd *cobra.Command) (*models.GenerateRequest, error) {
	request := models.NewGenerateRequest()

	var err error

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	var outputDir string
	if outputDir, err = cmd.Flags().GetString("output-dir"); err != nil {
		return nil, fmt.Errorf("invalid output-dir flag: %w", err)
	}
	if outputDir != "" {
		request.OutputDir = outputDir
	}

	if request.TemplatePath, err = cmd.Flags().GetString("template"); err != nil {
		return nil, fmt.Errorf("invalid template flag: %w", err)
	}

	if request.Vars, err = cmd.Flags().GetStringArray("var"); err != nil {
		return nil, fmt.Errorf("invalid var flag: %w", err)
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
