package ports

import (
	"context"
	"time"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/wizard"
)

// WizardRepository stores live wizard sessions for the lifetime of the process.
// Sessions are never persisted; a restart discards them.
type WizardRepository interface {
	// Add stores a new wizard. The wizard must be valid and its id unused.
	Add(ctx context.Context, w *wizard.Wizard) error

	// Get returns a copy of the stored wizard.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*wizard.Wizard, error)

	// Modify runs fn against the stored wizard while holding exclusive access
	// to that session and stores the result when fn returns nil. The returned
	// wizard is a copy of the stored state after fn.
	Modify(ctx context.Context, id kernel.UUID, fn func(w *wizard.Wizard) error) (*wizard.Wizard, error)

	// DeleteIdleSince removes every wizard last touched before cutoff and
	// returns how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
