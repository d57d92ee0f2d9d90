package app

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for different categories of failures
var (
	ErrConfigurationInvalid = errors.New("configuration error")
	ErrVariableInvalid      = errors.New("variable error")
	ErrOutputDirInvalid     = errors.New("output directory error")
	ErrTemplateUnreadable   = errors.New("template error")
	ErrWriteFailed          = errors.New("write error")
	ErrInputFailed          = errors.New("input error")
	ErrReloadFailed         = errors.New("reload error")
)

// CaddydevError represents a structured error with actionable guidance
type CaddydevError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *CaddydevError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s\n\nSuggestion: %s", e.Type, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *CaddydevError) Unwrap() error {
	return e.Cause
}

func (e *CaddydevError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Error constructors with actionable guidance

func NewConfigurationError(message string, cause error) *CaddydevError {
	guidance := "Check ~/.config/caddydev/config.toml for syntax errors, or remove it to fall back to defaults."

	return &CaddydevError{
		Type:     ErrConfigurationInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewVariableError(cause error) *CaddydevError {
	return &CaddydevError{
		Type:     ErrVariableInvalid,
		Message:  cause.Error(),
		Guidance: "Each --var must be in key=value form, e.g. --var port=8080.",
		Cause:    cause,
	}
}

func NewOutputDirError(dir string, cause error) *CaddydevError {
	message := fmt.Sprintf("output directory %q does not exist or is not a directory", dir)
	guidance := "The output directory is never created automatically. Create it first " +
		"or point --output-dir at an existing project folder."

	return &CaddydevError{
		Type:     ErrOutputDirInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewTemplateError(path string, cause error) *CaddydevError {
	message := fmt.Sprintf("failed to read template %q", path)
	guidance := fmt.Sprintf("Ensure %q exists and is readable, or pass a different file with --template.", path)

	if cause != nil && strings.Contains(cause.Error(), "permission") {
		guidance = fmt.Sprintf("Permission denied reading %q. Check the file's read permissions.", path)
	}

	return &CaddydevError{
		Type:     ErrTemplateUnreadable,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewWriteError(path string, cause error) *CaddydevError {
	message := fmt.Sprintf("failed to write %q", path)
	guidance := "Check that the destination directory is writable and has free space."

	return &CaddydevError{
		Type:     ErrWriteFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewConfigDirError(dir string, cause error) *CaddydevError {
	message := fmt.Sprintf("failed to create config directory %q", dir)
	guidance := "Check permissions on the parent directory, or set HOME to a writable location."

	return &CaddydevError{
		Type:     ErrWriteFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewInputError(cause error) *CaddydevError {
	return &CaddydevError{
		Type:     ErrInputFailed,
		Message:  "failed to read interactive input",
		Guidance: "Run 'caddydev init' from an interactive terminal.",
		Cause:    cause,
	}
}

func NewMissingImportFileError(path string) *CaddydevError {
	message := fmt.Sprintf("no generated Caddyfile at %q", path)
	guidance := "Run 'caddydev init' first to create the import configuration."

	return &CaddydevError{
		Type:     ErrReloadFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    nil,
	}
}

func NewReloadError(binary string, cause error) *CaddydevError {
	message := fmt.Sprintf("'%s reload' failed", binary)
	guidance := fmt.Sprintf("Check that %q is installed, on PATH, and currently running.", binary)

	return &CaddydevError{
		Type:     ErrReloadFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}
