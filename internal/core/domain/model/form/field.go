package form

import (
	"fmt"

	"orderwizard/internal/pkg/errs"
)

// Field identifies one value of the order form. The numeric order of the
// constants is the fixed key order used by the JSON payload and the CSV export.
type Field int

const (
	Name Field = iota
	Email
	Phone
	DeliveryStreet
	DeliveryColony
	DeliveryState
	DeliveryPostal
	PickupStreet
	PickupColony
	PickupState
	PickupPostal
	Notes

	fieldCount
)

var fieldNames = [fieldCount]string{
	Name:           "name",
	Email:          "email",
	Phone:          "phone",
	DeliveryStreet: "deliveryStreet",
	DeliveryColony: "deliveryColony",
	DeliveryState:  "deliveryState",
	DeliveryPostal: "deliveryPostal",
	PickupStreet:   "pickupStreet",
	PickupColony:   "pickupColony",
	PickupState:    "pickupState",
	PickupPostal:   "pickupPostal",
	Notes:          "notes",
}

// AllFields returns every field in the fixed key order.
func AllFields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// ParseField maps a wire name such as "deliveryState" to its Field.
// Names are case sensitive.
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("field", fmt.Errorf("%q is not a form field", name))
}

// Validate returns an error for values outside the declared fields.
func (f Field) Validate() error {
	if f < 0 || f >= fieldCount {
		return errs.NewValueIsOutOfRangeError("field", int(f), int(Name), int(fieldCount-1))
	}
	return nil
}

// String returns the wire name of the field.
func (f Field) String() string {
	if f.Validate() != nil {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}
