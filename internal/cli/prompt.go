package cli

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Prompter asks interactive questions during bootstrap.
type Prompter struct {
	// NonInteractive makes every prompt return its default immediately.
	NonInteractive bool
}

// Text prompts for a line of input, returning defaultValue when the answer
// is empty or prompting is disabled.
func (p *Prompter) Text(message, defaultValue string) (string, error) {
	if p.NonInteractive {
		return defaultValue, nil
	}

	result, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(defaultValue).
		Show(message)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return defaultValue, nil
	}
	return result, nil
}

// Confirm asks a yes/no question, returning defaultValue when prompting is
// disabled.
func (p *Prompter) Confirm(message string, defaultValue bool) (bool, error) {
	if p.NonInteractive {
		return defaultValue, nil
	}

	result, err := pterm.DefaultInteractiveConfirm.
		WithDefaultValue(defaultValue).
		Show(message)
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	return result, nil
}
