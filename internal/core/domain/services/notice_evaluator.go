package services

import (
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
)

// NoticeText is the message key of the delivery-cost notice shown on the
// summary step.
const NoticeText = "Delivery costs will be calculated later."

// ShowNotice reports whether the delivery or pickup state is one of the fixed
// regions. It is evaluated on every read, on any step.
func ShowNotice(state form.State) bool {
	return kernel.IsRegion(state.Get(form.DeliveryState)) ||
		kernel.IsRegion(state.Get(form.PickupState))
}
