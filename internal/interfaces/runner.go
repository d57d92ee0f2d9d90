package interfaces

// CommandRunner abstracts subprocess invocation. Run executes the named
// binary with the given arguments, inheriting the caller's stdio, and
// returns an error when the process cannot be started or exits nonzero.
type CommandRunner interface {
	Run(name string, args ...string) error
}
