package wizard_test

import (
	"testing"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWith(t *testing.T, values map[form.Field]string) form.State {
	t.Helper()
	s, err := form.NewState(values)
	require.NoError(t, err)
	return s
}

func validContact() map[form.Field]string {
	return map[form.Field]string{form.Name: "Ana", form.Email: "a@b.com", form.Phone: "555"}
}

func TestValidate_ContactStep(t *testing.T) {
	tests := []struct {
		name   string
		values map[form.Field]string
		want   wizard.ErrorMap
	}{
		{
			name:   "all valid",
			values: validContact(),
			want:   wizard.ErrorMap{},
		},
		{
			name:   "everything empty collects every violation",
			values: nil,
			want: wizard.ErrorMap{
				form.Name:  wizard.Required,
				form.Email: wizard.Required,
				form.Phone: wizard.Required,
			},
		},
		{
			name:   "missing tld segment",
			values: map[form.Field]string{form.Name: "Ana", form.Email: "a@b", form.Phone: "555"},
			want:   wizard.ErrorMap{form.Email: wizard.InvalidEmail},
		},
		{
			name:   "two at signs",
			values: map[form.Field]string{form.Name: "Ana", form.Email: "a@@b.com", form.Phone: "555"},
			want:   wizard.ErrorMap{form.Email: wizard.InvalidEmail},
		},
		{
			name:   "blank spaces count as a value",
			values: map[form.Field]string{form.Name: " ", form.Email: " @ . ", form.Phone: " "},
			want:   wizard.ErrorMap{},
		},
		{
			name:   "non empty malformed email with other fields missing",
			values: map[form.Field]string{form.Email: "nope"},
			want: wizard.ErrorMap{
				form.Name:  wizard.Required,
				form.Email: wizard.InvalidEmail,
				form.Phone: wizard.Required,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wizard.Validate(wizard.Contact, stateWith(t, tt.values))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_EmailVerdicts(t *testing.T) {
	base := validContact()

	base[form.Email] = "a@b"
	assert.Equal(t, wizard.InvalidEmail, wizard.Validate(wizard.Contact, stateWith(t, base))[form.Email])

	base[form.Email] = "a@b.com"
	assert.NotContains(t, wizard.Validate(wizard.Contact, stateWith(t, base)), form.Email)

	base[form.Email] = ""
	assert.Equal(t, wizard.Required, wizard.Validate(wizard.Contact, stateWith(t, base))[form.Email])
}

func TestValidate_AddressSteps(t *testing.T) {
	t.Run("delivery requires its four fields", func(t *testing.T) {
		got := wizard.Validate(wizard.Delivery, stateWith(t, map[form.Field]string{form.DeliveryStreet: "Reforma 1"}))

		assert.Equal(t, wizard.ErrorMap{
			form.DeliveryColony: wizard.Required,
			form.DeliveryState:  wizard.Required,
			form.DeliveryPostal: wizard.Required,
		}, got)
	})

	t.Run("pickup ignores delivery and contact fields", func(t *testing.T) {
		got := wizard.Validate(wizard.Pickup, stateWith(t, map[form.Field]string{
			form.PickupStreet: "Juárez 2",
			form.PickupColony: "Roma",
			form.PickupState:  "Jalisco",
			form.PickupPostal: "44100",
		}))

		assert.Empty(t, got)
	})

	t.Run("state value outside the region set is accepted", func(t *testing.T) {
		got := wizard.Validate(wizard.Delivery, stateWith(t, map[form.Field]string{
			form.DeliveryStreet: "a", form.DeliveryColony: "b", form.DeliveryState: "Jalisco", form.DeliveryPostal: "c",
		}))

		assert.Empty(t, got)
	})
}

func TestValidate_StepsWithoutRules(t *testing.T) {
	var empty form.State

	assert.Empty(t, wizard.Validate(wizard.Summary, empty))
	assert.Empty(t, wizard.Validate(wizard.Step(9), empty))
	assert.NotNil(t, wizard.Validate(wizard.Summary, empty))
}

func TestValidate_NotesNeverValidated(t *testing.T) {
	values := validContact()
	values[form.Notes] = ""

	for _, s := range []wizard.Step{wizard.Contact, wizard.Delivery, wizard.Pickup, wizard.Summary} {
		assert.NotContains(t, wizard.Validate(s, stateWith(t, values)), form.Notes)
	}
}

func TestValidate_IsIdempotent(t *testing.T) {
	states := []form.State{
		{},
		stateWith(t, validContact()),
		stateWith(t, map[form.Field]string{form.Email: "x@y", form.DeliveryState: "CDMX"}),
	}

	for _, s := range states {
		for _, step := range []wizard.Step{wizard.Contact, wizard.Delivery, wizard.Pickup, wizard.Summary} {
			assert.Equal(t, wizard.Validate(step, s), wizard.Validate(step, s))
		}
	}
}

func TestErrorMap_Keys(t *testing.T) {
	m := wizard.ErrorMap{form.Email: wizard.InvalidEmail, form.Phone: wizard.Required}

	assert.Equal(t, map[string]string{"email": "Invalid email", "phone": "Required"}, m.Keys())
	assert.False(t, m.IsEmpty())
	assert.True(t, wizard.ErrorMap(nil).IsEmpty())
}
