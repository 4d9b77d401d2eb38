package commands_test

import (
	"context"
	"errors"
	"time"

	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/order"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWizardRepository struct{ mock.Mock }

func (m *MockWizardRepository) Add(ctx context.Context, w *wizard.Wizard) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWizardRepository) Get(ctx context.Context, id kernel.UUID) (*wizard.Wizard, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*wizard.Wizard)
	return w, args.Error(1)
}

// Modify applies fn to the wizard configured as the first return value,
// mirroring the storage contract: the wizard is only kept when fn succeeds.
func (m *MockWizardRepository) Modify(
	ctx context.Context,
	id kernel.UUID,
	fn func(w *wizard.Wizard) error,
) (*wizard.Wizard, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}

	stored := args.Get(0).(*wizard.Wizard)
	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	*stored = *working.Clone()

	return working, nil
}

func (m *MockWizardRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockDispatcher struct{ mock.Mock }

func (m *MockDispatcher) Dispatch(ctx context.Context, state form.State) {
	m.Called(ctx, state)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func wizardAt(step wizard.Step, values map[form.Field]string) *wizard.Wizard {
	state, err := form.NewState(values)
	if err != nil {
		panic(err)
	}

	w, err := wizard.RestoreWizard(kernel.NewUUID(), state, step, nil)
	if err != nil {
		panic(err)
	}

	return w
}

func pickupValues() map[form.Field]string {
	return map[form.Field]string{
		form.Name:           "Ana",
		form.Email:          "a@b.co",
		form.Phone:          "5551234",
		form.DeliveryStreet: "Av 1",
		form.DeliveryColony: "Centro",
		form.DeliveryState:  string(kernel.CDMX),
		form.DeliveryPostal: "01000",
		form.PickupStreet:   "Calle 2",
		form.PickupColony:   "Roma",
		form.PickupState:    string(kernel.Puebla),
		form.PickupPostal:   "72000",
	}
}
