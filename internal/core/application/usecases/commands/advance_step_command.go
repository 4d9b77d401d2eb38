package commands

import (
	"errors"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrAdvanceStepCommandIsNotConstructed = errors.New(
	"AdvanceStepCommand must be created via NewAdvanceStepCommand constructor",
)

// AdvanceStepCommand moves a session forward when its active step validates.
type AdvanceStepCommand struct {
	wizardID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceStepCommand creates the command for the given session.
func NewAdvanceStepCommand(wizardID kernel.UUID) (AdvanceStepCommand, error) {
	if err := wizardID.Validate(); err != nil {
		return AdvanceStepCommand{}, err
	}

	return AdvanceStepCommand{
		wizardID: wizardID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStepCommandIsNotConstructed)
}

// WizardID returns the target session.
func (c AdvanceStepCommand) WizardID() kernel.UUID {
	return c.wizardID
}
