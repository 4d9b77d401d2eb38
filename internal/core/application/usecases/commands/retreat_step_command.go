package commands

import (
	"errors"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrRetreatStepCommandIsNotConstructed = errors.New(
	"RetreatStepCommand must be created via NewRetreatStepCommand constructor",
)

// RetreatStepCommand moves a session one step back without validating.
type RetreatStepCommand struct {
	wizardID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetreatStepCommand creates the command for the given session.
func NewRetreatStepCommand(wizardID kernel.UUID) (RetreatStepCommand, error) {
	if err := wizardID.Validate(); err != nil {
		return RetreatStepCommand{}, err
	}

	return RetreatStepCommand{
		wizardID: wizardID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatStepCommand) Validate() error {
	return c.guard.Validate(ErrRetreatStepCommandIsNotConstructed)
}

// WizardID returns the target session.
func (c RetreatStepCommand) WizardID() kernel.UUID {
	return c.wizardID
}
