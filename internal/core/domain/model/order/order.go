package order

import (
	"errors"
	"time"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is an order received through the create-order endpoint. It stores the
// submitted form exactly as sent: the wizard already validated it and the
// intake deliberately does not repeat that validation.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// form is the submitted payload
	form form.State

	// receivedAt is when the intake accepted the payload
	receivedAt time.Time

	isConstructed bool
}

// NewOrder creates a received order.
//
// Example:
//
//	var state form.State
//	_ = state.Set(form.Name, "Ana")
//	o, err := order.NewOrder(kernel.NewUUID(), state, time.Now())
func NewOrder(id kernel.UUID, state form.State, receivedAt time.Time) (*Order, error) {
	o := &Order{
		form:          state,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReceivedAt(receivedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence.
func RestoreOrder(id kernel.UUID, state form.State, receivedAt time.Time) (*Order, error) {
	return NewOrder(id, state, receivedAt)
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Form returns the submitted form values.
func (o *Order) Form() form.State {
	return o.form
}

// ReceivedAt returns the time the intake accepted the order.
func (o *Order) ReceivedAt() time.Time {
	return o.receivedAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReceivedAt(receivedAt time.Time) error {
	if receivedAt.IsZero() {
		return errs.NewValueIsRequiredError("receivedAt")
	}
	o.receivedAt = receivedAt.UTC()
	return nil
}
