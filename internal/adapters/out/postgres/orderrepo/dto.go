// Package orderrepo maps orders received by the intake endpoint to the
// "orders" table.
package orderrepo

import (
	"time"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table. Addresses are embedded with a
// delivery_ or pickup_ column prefix.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Contact    ContactDTO `gorm:"embedded"`
	Delivery   AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	Pickup     AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Notes      string     `gorm:"type:text;not null;default:''"`
	ReceivedAt time.Time  `gorm:"not null;index"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// ContactDTO holds the contact columns.
type ContactDTO struct {
	Name  string `gorm:"not null;default:''"`
	Email string `gorm:"not null;default:''"`
	Phone string `gorm:"not null;default:''"`
}

// AddressDTO holds one address block.
type AddressDTO struct {
	Street string `gorm:"not null;default:''"`
	Colony string `gorm:"not null;default:''"`
	State  string `gorm:"not null;default:''"`
	Postal string `gorm:"not null;default:''"`
}

func fromDomain(o *order.Order) OrderDTO {
	state := o.Form()

	return OrderDTO{
		ID: o.ID().Bytes(),
		Contact: ContactDTO{
			Name:  state.Get(form.Name),
			Email: state.Get(form.Email),
			Phone: state.Get(form.Phone),
		},
		Delivery: AddressDTO{
			Street: state.Get(form.DeliveryStreet),
			Colony: state.Get(form.DeliveryColony),
			State:  state.Get(form.DeliveryState),
			Postal: state.Get(form.DeliveryPostal),
		},
		Pickup: AddressDTO{
			Street: state.Get(form.PickupStreet),
			Colony: state.Get(form.PickupColony),
			State:  state.Get(form.PickupState),
			Postal: state.Get(form.PickupPostal),
		},
		Notes:      state.Get(form.Notes),
		ReceivedAt: o.ReceivedAt(),
	}
}

// FormState rebuilds the form values stored in the row.
func (dto OrderDTO) FormState() (form.State, error) {
	return form.NewState(map[form.Field]string{
		form.Name:           dto.Contact.Name,
		form.Email:          dto.Contact.Email,
		form.Phone:          dto.Contact.Phone,
		form.DeliveryStreet: dto.Delivery.Street,
		form.DeliveryColony: dto.Delivery.Colony,
		form.DeliveryState:  dto.Delivery.State,
		form.DeliveryPostal: dto.Delivery.Postal,
		form.PickupStreet:   dto.Pickup.Street,
		form.PickupColony:   dto.Pickup.Colony,
		form.PickupState:    dto.Pickup.State,
		form.PickupPostal:   dto.Pickup.Postal,
		form.Notes:          dto.Notes,
	})
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	state, err := dto.FormState()
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, state, dto.ReceivedAt)
}
