package form_test

import (
	"encoding/json"
	"testing"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledState(t *testing.T) form.State {
	t.Helper()
	s, err := form.NewState(map[form.Field]string{
		form.Name:           "Ana",
		form.Email:          "a@b.com",
		form.Phone:          "555",
		form.DeliveryStreet: "Reforma 1",
		form.DeliveryColony: "Centro",
		form.DeliveryState:  "CDMX",
		form.DeliveryPostal: "06000",
		form.PickupStreet:   "Juárez 2",
		form.PickupColony:   "Roma",
		form.PickupState:    "Puebla",
		form.PickupPostal:   "72000",
	})
	require.NoError(t, err)
	return s
}

func TestState_ZeroValueHasEveryFieldEmpty(t *testing.T) {
	var s form.State

	values := s.Values()
	require.Len(t, values, 12)
	for _, v := range values {
		assert.Empty(t, v.Value, v.Field.String())
	}
	assert.Len(t, s.Map(), 12)
}

func TestState_SetChangesOnlyThatField(t *testing.T) {
	inputs := []string{"", "x", "  spaced  ", "ñandú", "a,\"b\"\nc"}

	for _, f := range form.AllFields() {
		for _, in := range inputs {
			before := filledState(t)
			after := before

			require.NoError(t, after.Set(f, in))

			assert.Equal(t, in, after.Get(f))
			for _, other := range form.AllFields() {
				if other == f {
					continue
				}
				assert.Equal(t, before.Get(other), after.Get(other), "field %s changed while setting %s", other, f)
			}
		}
	}
}

func TestState_SetRejectsUnknownField(t *testing.T) {
	var s form.State

	err := s.Set(form.Field(99), "x")

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Empty(t, s.Get(form.Field(99)))
}

func TestState_CopyDoesNotAlias(t *testing.T) {
	original := filledState(t)
	snapshot := original

	require.NoError(t, original.Set(form.Name, "Beto"))

	assert.Equal(t, "Ana", snapshot.Get(form.Name))
}

func TestState_MarshalJSONKeepsFixedOrder(t *testing.T) {
	s := filledState(t)

	data, err := json.Marshal(s)

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name":"Ana","email":"a@b.com","phone":"555",
		"deliveryStreet":"Reforma 1","deliveryColony":"Centro","deliveryState":"CDMX","deliveryPostal":"06000",
		"pickupStreet":"Juárez 2","pickupColony":"Roma","pickupState":"Puebla","pickupPostal":"72000",
		"notes":""}`, string(data))
	assert.Regexp(t, `^\{"name":"Ana","email":"a@b.com","phone":"555","deliveryStreet"`, string(data))
	assert.Regexp(t, `"notes":""\}$`, string(data))
}

func TestState_UnmarshalJSON(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		s := filledState(t)
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var decoded form.State
		require.NoError(t, json.Unmarshal(data, &decoded))

		if diff := cmp.Diff(s.Map(), decoded.Map()); diff != "" {
			t.Errorf("decoded state mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown keys ignored and missing keys empty", func(t *testing.T) {
		var decoded form.State
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","coupon":"X1"}`), &decoded))

		assert.Equal(t, "Ana", decoded.Get(form.Name))
		assert.Empty(t, decoded.Get(form.Email))
		assert.NotContains(t, decoded.Map(), "coupon")
	})

	t.Run("non string values rejected", func(t *testing.T) {
		var decoded form.State
		err := json.Unmarshal([]byte(`{"name":42}`), &decoded)
		require.Error(t, err)
	})
}

func TestParseField(t *testing.T) {
	for _, f := range form.AllFields() {
		parsed, err := form.ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := form.ParseField("DeliveryState")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "Field(42)", form.Field(42).String())
}
