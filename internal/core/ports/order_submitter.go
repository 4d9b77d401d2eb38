// Package ports defines the contracts between the order wizard core and its
// adapters: session storage, order intake persistence and the outbound
// order-creation endpoint.
package ports

import (
	"context"

	"orderwizard/internal/core/domain/model/form"
)

// OrderSubmitter delivers a completed form to the order-creation endpoint.
// Implementations report transport and non-2xx responses as errors; the
// caller decides whether anyone hears about them.
type OrderSubmitter interface {
	Submit(ctx context.Context, state form.State) error
}
