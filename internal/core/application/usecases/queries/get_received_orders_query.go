package queries

import (
	"errors"
	"time"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrGetReceivedOrdersQueryIsNotConstructed = errors.New(
	"GetReceivedOrdersQuery must be created via NewGetReceivedOrdersQuery constructor",
)

// GetReceivedOrdersQuery lists orders accepted by the intake endpoint,
// newest first.
//
// Example:
//
//	orders, err := NewGetReceivedOrdersQueryHandler(db).Handle(ctx, NewGetReceivedOrdersQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetReceivedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReceivedOrdersQuery creates a parameterless query.
func NewGetReceivedOrdersQuery() GetReceivedOrdersQuery {
	return GetReceivedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReceivedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReceivedOrdersQueryIsNotConstructed)
}

// GetReceivedOrdersQueryResponse is one received order.
type GetReceivedOrdersQueryResponse struct {
	ID         kernel.UUID
	Form       form.State
	ReceivedAt time.Time
}
