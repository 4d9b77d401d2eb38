package queries_test

import (
	"context"
	"time"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/order"
	"orderwizard/internal/core/domain/model/wizard"

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

func (m *MockWizardRepository) Modify(
	ctx context.Context,
	id kernel.UUID,
	fn func(w *wizard.Wizard) error,
) (*wizard.Wizard, error) {
	args := m.Called(ctx, id, fn)
	w, _ := args.Get(0).(*wizard.Wizard)
	return w, args.Error(1)
}

func (m *MockWizardRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}
