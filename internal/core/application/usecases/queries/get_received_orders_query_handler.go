package queries

import (
	"context"
	"time"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetReceivedOrdersQueryHandler reads the orders table directly.
type GetReceivedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetReceivedOrdersQueryHandler creates a handler on db.
func NewGetReceivedOrdersQueryHandler(db *gorm.DB) GetReceivedOrdersQueryHandler {
	return GetReceivedOrdersQueryHandler{db: db}
}

// Handle returns every stored order ordered by receive time, newest first,
// ties broken by id.
func (h GetReceivedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetReceivedOrdersQuery,
) ([]GetReceivedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name, email, phone,
			delivery_street, delivery_colony, delivery_state, delivery_postal,
			pickup_street, pickup_colony, pickup_state, pickup_postal,
			notes,
			received_at
		FROM orders
		ORDER BY received_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetReceivedOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			receivedAt time.Time
		)
		fields := []form.Field{
			form.Name, form.Email, form.Phone,
			form.DeliveryStreet, form.DeliveryColony, form.DeliveryState, form.DeliveryPostal,
			form.PickupStreet, form.PickupColony, form.PickupState, form.PickupPostal,
			form.Notes,
		}
		values := make([]string, len(fields))

		dest := make([]any, 0, len(fields)+2)
		dest = append(dest, &id)
		for i := range values {
			dest = append(dest, &values[i])
		}
		dest = append(dest, &receivedAt)

		if err = rows.Scan(dest...); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		byField := make(map[form.Field]string, len(fields))
		for i, f := range fields {
			byField[f] = values[i]
		}
		state, stateErr := form.NewState(byField)
		if stateErr != nil {
			return nil, stateErr
		}

		orders = append(orders, GetReceivedOrdersQueryResponse{
			ID:         orderID,
			Form:       state,
			ReceivedAt: receivedAt.UTC(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
