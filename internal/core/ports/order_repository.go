package ports

import (
	"context"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders received by the
// order intake endpoint.
type OrderRepository interface {
	// Add persists a newly received order.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
