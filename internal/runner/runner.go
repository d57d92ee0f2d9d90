package runner

import (
	"os"
	"os/exec"
)

// ExecRunner runs commands via os/exec with the caller's stdio, so the
// invoked process can print its own diagnostics directly.
type ExecRunner struct{}

// NewExecRunner creates a new exec-backed command runner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the named binary with args and waits for it to finish. The
// returned error is an *exec.ExitError when the process exits nonzero.
func (r *ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
