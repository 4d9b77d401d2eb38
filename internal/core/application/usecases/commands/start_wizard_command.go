package commands

import (
	"errors"

	"orderwizard/internal/pkg/guard"
)

var ErrStartWizardCommandIsNotConstructed = errors.New(
	"StartWizardCommand must be created via NewStartWizardCommand constructor",
)

// StartWizardCommand opens a new wizard session on the Contact step.
type StartWizardCommand struct {
	guard guard.ConstructorGuard
}

// NewStartWizardCommand creates a parameterless start command.
func NewStartWizardCommand() StartWizardCommand {
	return StartWizardCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c StartWizardCommand) Validate() error {
	return c.guard.Validate(ErrStartWizardCommandIsNotConstructed)
}
