package commands

import (
	"errors"
	"time"

	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"
)

var ErrExpireWizardsCommandIsNotConstructed = errors.New(
	"ExpireWizardsCommand must be created via NewExpireWizardsCommand constructor",
)

// ExpireWizardsCommand drops sessions nobody touched for longer than idleFor.
type ExpireWizardsCommand struct {
	idleFor time.Duration

	guard guard.ConstructorGuard
}

// NewExpireWizardsCommand requires a positive idle duration.
func NewExpireWizardsCommand(idleFor time.Duration) (ExpireWizardsCommand, error) {
	if idleFor <= 0 {
		return ExpireWizardsCommand{}, errs.NewValueIsOutOfRangeError("idleFor", idleFor, time.Nanosecond, time.Duration(1<<63-1))
	}

	return ExpireWizardsCommand{
		idleFor: idleFor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireWizardsCommand) Validate() error {
	return c.guard.Validate(ErrExpireWizardsCommandIsNotConstructed)
}

// IdleFor returns the idle threshold.
func (c ExpireWizardsCommand) IdleFor() time.Duration {
	return c.idleFor
}
