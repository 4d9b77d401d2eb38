package wizard

import (
	"context"
	"errors"
	"fmt"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
)

var (
	// ErrWizardIsNotConstructed is returned when a Wizard was not created
	// through NewWizard or RestoreWizard.
	ErrWizardIsNotConstructed = errors.New("Wizard must be created via NewWizard constructor")

	// ErrSubmitOutsidePickup is returned by Submit when the active step is not Pickup.
	ErrSubmitOutsidePickup = errors.New("submit is only allowed from the pickup step")

	// ErrSubmitRequired is returned by Advance on the Pickup step. Summary is
	// only reachable through Submit.
	ErrSubmitRequired = errors.New("the pickup step is left through submit")
)

// Dispatcher hands the final form to the order-creation collaborator.
// Dispatch must not block and reports nothing back: the wizard moves to
// Summary whatever happens to the submission.
type Dispatcher interface {
	Dispatch(ctx context.Context, state form.State)
}

// Wizard is the aggregate root of one order-entry session. It owns the form
// values, the active step and the ErrorMap published by the last forward
// attempt.
//
// Wizard follows these invariants:
//   - Step only moves forward by one, and Pickup only moves to Summary
//     on submit
//   - A non-empty ErrorMap never lets the step move forward
//   - Editing a field never validates and never touches step or errors
//
// A Wizard is not safe for concurrent use; repositories serialize access.
type Wizard struct {
	id     kernel.UUID
	form   form.State
	step   Step
	errors ErrorMap

	isConstructed bool
}

// NewWizard creates a wizard on the Contact step with an empty form.
func NewWizard(id kernel.UUID) (*Wizard, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Wizard{
		id:            id,
		step:          Contact,
		errors:        ErrorMap{},
		isConstructed: true,
	}, nil
}

// RestoreWizard rebuilds a wizard from stored state.
func RestoreWizard(id kernel.UUID, state form.State, step Step, errorMap ErrorMap) (*Wizard, error) {
	if err := errors.Join(id.Validate(), step.Validate()); err != nil {
		return nil, err
	}

	return &Wizard{
		id:            id,
		form:          state,
		step:          step,
		errors:        errorMap.Clone(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Wizard was built through a constructor.
func (w *Wizard) Validate() error {
	if w == nil || !w.isConstructed {
		return ErrWizardIsNotConstructed
	}
	return nil
}

// ID returns the session identifier.
func (w *Wizard) ID() kernel.UUID {
	return w.id
}

// Step returns the active step.
func (w *Wizard) Step() Step {
	return w.step
}

// Form returns a snapshot of the current form values.
func (w *Wizard) Form() form.State {
	return w.form
}

// Errors returns a copy of the ErrorMap published by the last forward attempt.
func (w *Wizard) Errors() ErrorMap {
	return w.errors.Clone()
}

// Clone returns an independent copy of the wizard.
func (w *Wizard) Clone() *Wizard {
	c := *w
	c.errors = w.errors.Clone()
	return &c
}

// SetField replaces one field value. Step and ErrorMap are left untouched.
func (w *Wizard) SetField(f form.Field, value string) error {
	return w.form.Set(f, value)
}

// Advance validates the active step. When it is valid the step moves forward
// (bounded by Summary) and the ErrorMap is cleared; otherwise the step stays
// and the new ErrorMap is published through Errors.
//
// On Pickup, Advance fails with ErrSubmitRequired and changes nothing: the
// move to Summary is gated by the dispatch done in Submit.
//
// Advance reports whether validation passed.
func (w *Wizard) Advance() (bool, error) {
	if w.step == Pickup {
		return false, ErrSubmitRequired
	}

	violations := Validate(w.step, w.form)
	if !violations.IsEmpty() {
		w.errors = violations
		return false, nil
	}

	w.step = w.step.Next()
	w.errors = ErrorMap{}
	return true, nil
}

// Retreat moves one step back, bounded by Contact. It never validates and
// keeps the ErrorMap and every field value as they are.
//
// Retreat reports whether the step changed.
func (w *Wizard) Retreat() bool {
	previous := w.step.Previous()
	moved := previous != w.step
	w.step = previous
	return moved
}

// Submit validates the Pickup step and, when valid, hands a snapshot of the
// whole form to d and moves to Summary. The move does not depend on the
// submission outcome, which Dispatcher never reports.
//
// Submit reports whether validation passed.
func (w *Wizard) Submit(ctx context.Context, d Dispatcher) (bool, error) {
	if w.step != Pickup {
		return false, fmt.Errorf("%w: active step is %s", ErrSubmitOutsidePickup, w.step)
	}

	violations := Validate(w.step, w.form)
	if !violations.IsEmpty() {
		w.errors = violations
		return false, nil
	}

	d.Dispatch(ctx, w.form)
	w.step = Summary
	w.errors = ErrorMap{}
	return true, nil
}
