package app

import (
	"fmt"
	"os"

	"caddydev-cli/internal/interfaces"
)

// Reload asks the running Caddy process to reload the generated import
// configuration. The import file must already exist; no subprocess is
// spawned when it does not.
func Reload(run interfaces.CommandRunner, importFile, configPath string) error {
	if _, err := os.Stat(importFile); err != nil {
		return NewMissingImportFileError(importFile)
	}

	cfg, err := loadConfiguration(configPath)
	if err != nil {
		return err
	}

	if err := run.Run(cfg.CaddyBinary, "reload", "--config", importFile); err != nil {
		return NewReloadError(cfg.CaddyBinary, err)
	}

	fmt.Printf("Caddy reloaded with %s\n", importFile)
	return nil
}
