package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"caddydev-cli/internal/importlist"
	"caddydev-cli/internal/interfaces"
)

// Init interactively collects folder paths or glob patterns and writes the
// import configuration to importFile, one import directive per entry. The
// file is fully regenerated; existing content is only replaced after the
// user confirms the overwrite.
func Init(provider interfaces.InputProvider, importFile, configPath string) error {
	cfg, err := loadConfiguration(configPath)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(importFile)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return NewConfigDirError(configDir, err)
	}

	if _, err := os.Stat(importFile); err == nil {
		overwrite, err := provider.Confirm(
			fmt.Sprintf("Config file already exists: %s. Overwrite?", importFile), false)
		if err != nil {
			return NewInputError(err)
		}
		if !overwrite {
			fmt.Printf("Keeping existing %s\n", importFile)
			return nil
		}
	}

	entries, err := collectEntries(provider)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No folders given - nothing was saved.")
		return nil
	}

	content := importlist.Render(entries, cfg.OutputName)
	if err := os.WriteFile(importFile, []byte(content), 0644); err != nil {
		return NewWriteError(importFile, err)
	}

	fmt.Printf("Saved %d folder(s) to %s\n", len(entries), importFile)
	return nil
}

// collectEntries reads folder paths or glob patterns one per line until the
// user submits an empty line.
func collectEntries(provider interfaces.InputProvider) ([]importlist.Entry, error) {
	// Home expansion falls back to keeping entries verbatim.
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	var entries []importlist.Entry
	for {
		line, err := provider.ReadLine("Folder path or glob pattern (empty to finish):")
		if err != nil {
			return nil, NewInputError(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return entries, nil
		}
		entries = append(entries, importlist.NewEntry(line, home))
	}
}
