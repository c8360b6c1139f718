package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Confirmer asks the user to approve a destructive command.
type Confirmer interface {
	Confirm(title string) (bool, error)
}

// PromptConfirmer asks with an interactive huh prompt.
type PromptConfirmer struct{}

func (PromptConfirmer) Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeDracula()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("huh.Form.Run() > %w", err)
	}
	return ok, nil
}

// AssumeYes approves every command. It backs the --yes flag.
type AssumeYes struct{}

func (AssumeYes) Confirm(string) (bool, error) {
	return true, nil
}
