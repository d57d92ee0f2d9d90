// Package app wires the caddydev operations together. Each operation is an
// independent, stateless entry point; the only state shared between
// invocations is the generated Caddyfile under the config directory.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"caddydev-cli/internal/config"
	"caddydev-cli/internal/interfaces"
	"caddydev-cli/internal/template"
	"caddydev-cli/pkg/models"
)

// Generate renders the template into <output-dir>/Caddyfile.dev
func Generate(request *models.GenerateRequest) error {
	// Variables are validated before any file is touched.
	vars, err := template.ParseVars(request.Vars)
	if err != nil {
		return NewVariableError(err)
	}

	cfg, err := loadConfiguration(request.ConfigPath)
	if err != nil {
		return err
	}

	outputDir := request.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return NewOutputDirError(outputDir, err)
	}

	templatePath := request.TemplatePath
	if templatePath == "" {
		templatePath = filepath.Join(outputDir, cfg.TemplateName)
	}

	rendered, err := template.RenderFile(templatePath, vars)
	if err != nil {
		return NewTemplateError(templatePath, err)
	}

	outputPath := filepath.Join(outputDir, cfg.OutputName)
	if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
		return NewWriteError(outputPath, err)
	}

	fmt.Printf("%s successfully generated at: %s\n", cfg.OutputName, outputPath)
	if len(vars) > 0 {
		fmt.Printf("Applied variables: %v\n", template.SortedKeys(vars))
	} else {
		fmt.Println("No variables provided - template copied without changes.")
	}
	fmt.Printf("Reload Caddy with: %s reload --config %s (or 'caddydev reload')\n",
		cfg.CaddyBinary, config.ImportFilePath())

	return nil
}

// loadConfiguration loads the tool settings, applying defaults when no
// settings file exists.
func loadConfiguration(configPath string) (*interfaces.Config, error) {
	manager := config.NewManager()

	cfg, err := manager.Load(configPath)
	if err != nil {
		return nil, NewConfigurationError("failed to load configuration", err)
	}

	if err := manager.Validate(cfg); err != nil {
		return nil, NewConfigurationError(err.Error(), err)
	}

	return cfg, nil
}
