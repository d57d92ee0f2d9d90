package interfaces

// InputProvider abstracts blocking console input so operations can be
// driven by a scripted provider in tests instead of a real terminal.
type InputProvider interface {
	// ReadLine prompts for and returns a single line of input
	ReadLine(prompt string) (string, error)

	// Confirm asks a yes/no question and returns the answer
	Confirm(prompt string, defaultValue bool) (bool, error)
}
