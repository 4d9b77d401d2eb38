package commands

import (
	"errors"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrSubmitWizardCommandIsNotConstructed = errors.New(
	"SubmitWizardCommand must be created via NewSubmitWizardCommand constructor",
)

// SubmitWizardCommand submits a session from the Pickup step.
type SubmitWizardCommand struct {
	wizardID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitWizardCommand creates the command for the given session.
func NewSubmitWizardCommand(wizardID kernel.UUID) (SubmitWizardCommand, error) {
	if err := wizardID.Validate(); err != nil {
		return SubmitWizardCommand{}, err
	}

	return SubmitWizardCommand{
		wizardID: wizardID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitWizardCommand) Validate() error {
	return c.guard.Validate(ErrSubmitWizardCommandIsNotConstructed)
}

// WizardID returns the target session.
func (c SubmitWizardCommand) WizardID() kernel.UUID {
	return c.wizardID
}
