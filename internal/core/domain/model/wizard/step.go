package wizard

import (
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/pkg/errs"
)

// Step is the active screen of the order wizard.
//
// State transitions:
//
//	Contact <──> Delivery <──> Pickup ──submit──> Summary
//
// Forward moves are gated by Validate(step, form). Backward moves are never
// gated. Summary is terminal: there is no forward move out of it.
type Step int

const (
	// Contact collects name, email and phone.
	Contact Step = iota

	// Delivery collects the delivery address.
	Delivery

	// Pickup collects the pickup address. Submitting happens from here.
	Pickup

	// Summary is the read-only terminal step reached after submission.
	Summary
)

const stepCount = int(Summary) + 1

var stepNames = [stepCount]string{
	Contact:  "contact",
	Delivery: "delivery",
	Pickup:   "pickup",
	Summary:  "summary",
}

var stepFields = [stepCount][]form.Field{
	Contact:  {form.Name, form.Email, form.Phone},
	Delivery: {form.DeliveryStreet, form.DeliveryColony, form.DeliveryState, form.DeliveryPostal},
	Pickup:   {form.PickupStreet, form.PickupColony, form.PickupState, form.PickupPostal},
	Summary:  nil,
}

// Validate returns an error for values outside Contact..Summary.
func (s Step) Validate() error {
	if s < Contact || s > Summary {
		return errs.NewValueIsOutOfRangeError("step", int(s), int(Contact), int(Summary))
	}
	return nil
}

// String returns the lowercase step name, or "unknown".
func (s Step) String() string {
	if s.Validate() != nil {
		return "unknown"
	}
	return stepNames[s]
}

// IsTerminal reports whether s is the Summary step.
func (s Step) IsTerminal() bool {
	return s == Summary
}

// Next returns the following step, bounded above by Summary.
func (s Step) Next() Step {
	if s >= Summary {
		return Summary
	}
	return s + 1
}

// Previous returns the preceding step, bounded below by Contact.
func (s Step) Previous() Step {
	if s <= Contact {
		return Contact
	}
	return s - 1
}

// Fields returns the fields entered on s. Notes belongs to no step.
func (s Step) Fields() []form.Field {
	if s.Validate() != nil {
		return nil
	}
	return append([]form.Field(nil), stepFields[s]...)
}

// Progress returns the completion percentage shown by the progress bar:
// 25 on Contact up to 100 on Summary.
func (s Step) Progress() int {
	if s.Validate() != nil {
		return 0
	}
	return (int(s) + 1) * 100 / stepCount
}
