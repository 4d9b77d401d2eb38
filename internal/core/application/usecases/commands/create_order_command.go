package commands

import (
	"errors"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand records a form posted to the order intake endpoint.
// The form is stored as received; the wizard already validated it.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), state)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	form    form.State

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to store a received form.
func NewCreateOrderCommand(orderID kernel.UUID, state form.State) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		form:  state,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Form returns the received form values.
func (c CreateOrderCommand) Form() form.State {
	return c.form
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
