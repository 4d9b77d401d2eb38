package services_test

import (
	"testing"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowNotice(t *testing.T) {
	tests := []struct {
		name     string
		delivery string
		pickup   string
		want     bool
	}{
		{name: "delivery in set", delivery: "Puebla", pickup: "", want: true},
		{name: "pickup in set", delivery: "", pickup: "CDMX", want: true},
		{name: "both in set", delivery: "EdoMex", pickup: "Hidalgo", want: true},
		{name: "both empty", delivery: "", pickup: "", want: false},
		{name: "both outside set", delivery: "Jalisco", pickup: "Jalisco", want: false},
		{name: "case sensitive", delivery: "morelos", pickup: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s form.State
			require.NoError(t, s.Set(form.DeliveryState, tt.delivery))
			require.NoError(t, s.Set(form.PickupState, tt.pickup))

			assert.Equal(t, tt.want, services.ShowNotice(s))
		})
	}
}

func TestShowNotice_IgnoresOtherFields(t *testing.T) {
	var s form.State
	require.NoError(t, s.Set(form.Notes, "CDMX"))
	require.NoError(t, s.Set(form.DeliveryColony, "Puebla"))

	assert.False(t, services.ShowNotice(s))
}
