package wizard_test

import (
	"testing"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_NextAndPrevious(t *testing.T) {
	tests := []struct {
		step     wizard.Step
		next     wizard.Step
		previous wizard.Step
	}{
		{wizard.Contact, wizard.Delivery, wizard.Contact},
		{wizard.Delivery, wizard.Pickup, wizard.Contact},
		{wizard.Pickup, wizard.Summary, wizard.Delivery},
		{wizard.Summary, wizard.Summary, wizard.Pickup},
	}

	for _, tt := range tests {
		t.Run(tt.step.String(), func(t *testing.T) {
			assert.Equal(t, tt.next, tt.step.Next())
			assert.Equal(t, tt.previous, tt.step.Previous())
		})
	}
}

func TestStep_Validate(t *testing.T) {
	for _, s := range []wizard.Step{wizard.Contact, wizard.Delivery, wizard.Pickup, wizard.Summary} {
		require.NoError(t, s.Validate())
	}

	err := wizard.Step(4).Validate()
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, wizard.Step(-1).Validate(), errs.ErrValueIsOutOfRange)
	assert.Equal(t, "unknown", wizard.Step(4).String())
}

func TestStep_Fields(t *testing.T) {
	assert.Equal(t, []form.Field{form.Name, form.Email, form.Phone}, wizard.Contact.Fields())
	assert.Equal(t,
		[]form.Field{form.DeliveryStreet, form.DeliveryColony, form.DeliveryState, form.DeliveryPostal},
		wizard.Delivery.Fields(),
	)
	assert.Equal(t,
		[]form.Field{form.PickupStreet, form.PickupColony, form.PickupState, form.PickupPostal},
		wizard.Pickup.Fields(),
	)
	assert.Empty(t, wizard.Summary.Fields())

	t.Run("returned slice is a copy", func(t *testing.T) {
		fields := wizard.Contact.Fields()
		fields[0] = form.Notes
		assert.Equal(t, form.Name, wizard.Contact.Fields()[0])
	})
}

func TestStep_Progress(t *testing.T) {
	assert.Equal(t, 25, wizard.Contact.Progress())
	assert.Equal(t, 50, wizard.Delivery.Progress())
	assert.Equal(t, 75, wizard.Pickup.Progress())
	assert.Equal(t, 100, wizard.Summary.Progress())
	assert.True(t, wizard.Summary.IsTerminal())
	assert.False(t, wizard.Pickup.IsTerminal())
}
