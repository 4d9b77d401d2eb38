package commands

import (
	"errors"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrSetFieldCommandIsNotConstructed = errors.New(
	"SetFieldCommand must be created via NewSetFieldCommand constructor",
)

// SetFieldCommand replaces one form value of a wizard session.
//
// Example:
//
//	cmd, err := NewSetFieldCommand(wizardID, "deliveryState", "Puebla")
//	if err != nil {
//	    return err // unknown field name or invalid id
//	}
type SetFieldCommand struct { //nolint:recvcheck //using for validation
	wizardID kernel.UUID
	field    form.Field
	value    string

	guard guard.ConstructorGuard
}

// NewSetFieldCommand validates the wizard id and field name. The value is
// accepted as is, including the empty string.
func NewSetFieldCommand(wizardID kernel.UUID, fieldName string, value string) (SetFieldCommand, error) {
	cmd := SetFieldCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWizardID(wizardID),
		cmd.setField(fieldName),
	); err != nil {
		return SetFieldCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetFieldCommand) Validate() error {
	return c.guard.Validate(ErrSetFieldCommandIsNotConstructed)
}

// WizardID returns the target session.
func (c SetFieldCommand) WizardID() kernel.UUID {
	return c.wizardID
}

// Field returns the field to replace.
func (c SetFieldCommand) Field() form.Field {
	return c.field
}

// Value returns the new value.
func (c SetFieldCommand) Value() string {
	return c.value
}

func (c *SetFieldCommand) setWizardID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.wizardID = id
	return nil
}

func (c *SetFieldCommand) setField(name string) error {
	f, err := form.ParseField(name)
	if err != nil {
		return err
	}
	c.field = f
	return nil
}
