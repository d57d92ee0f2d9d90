package interactive

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// Prompter handles interactive user input collection. It implements
// interfaces.InputProvider on top of survey.
type Prompter struct{}

// NewPrompter creates a new interactive prompter
func NewPrompter() *Prompter {
	return &Prompter{}
}

// ReadLine prompts for a single line of input. An empty answer is allowed;
// callers use it to end collection.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	question := &survey.Input{
		Message: prompt,
	}

	var answer string
	if err := survey.AskOne(question, &answer); err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// Confirm asks a yes/no question and returns the answer
func (p *Prompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	question := &survey.Confirm{
		Message: prompt,
		Default: defaultValue,
	}

	var answer bool
	if err := survey.AskOne(question, &answer); err != nil {
		return false, err
	}

	return answer, nil
}
