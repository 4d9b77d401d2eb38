// Package memory keeps wizard sessions in process memory. Sessions do not
// survive a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/pkg/errs"
)

type entry struct {
	wizard    *wizard.Wizard
	touchedAt time.Time
}

// WizardRepository implements ports.WizardRepository with a map guarded by a
// mutex. Stored wizards are never handed out; callers get copies.
type WizardRepository struct {
	mu      sync.Mutex
	entries map[kernel.UUID]*entry
	now     func() time.Time
}

// NewWizardRepository creates an empty store. now stamps the last access of
// each session; nil means time.Now.
func NewWizardRepository(now func() time.Time) *WizardRepository {
	if now == nil {
		now = time.Now
	}

	return &WizardRepository{
		entries: make(map[kernel.UUID]*entry),
		now:     now,
	}
}

// Add stores w. An id already in use is rejected.
func (r *WizardRepository) Add(_ context.Context, w *wizard.Wizard) error {
	if err := w.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[w.ID()]; ok {
		return errs.NewValueIsInvalidError("wizardID")
	}

	r.entries[w.ID()] = &entry{wizard: w.Clone(), touchedAt: r.now()}
	return nil
}

// Get returns a copy of the stored wizard and refreshes its access time.
func (r *WizardRepository) Get(_ context.Context, id kernel.UUID) (*wizard.Wizard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("wizard", id.String())
	}

	e.touchedAt = r.now()
	return e.wizard.Clone(), nil
}

// Modify applies fn to a working copy and keeps it only when fn returns nil.
// The store lock is held while fn runs, so fn must not call back into the
// repository.
func (r *WizardRepository) Modify(
	_ context.Context,
	id kernel.UUID,
	fn func(w *wizard.Wizard) error,
) (*wizard.Wizard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("wizard", id.String())
	}

	working := e.wizard.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	e.wizard = working
	e.touchedAt = r.now()
	return working.Clone(), nil
}

// DeleteIdleSince drops sessions whose last access is before cutoff.
func (r *WizardRepository) DeleteIdleSince(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if e.touchedAt.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of live sessions.
func (r *WizardRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
