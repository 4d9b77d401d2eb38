package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/core/ports"
)

// AdvanceStepCommandHandler runs the step validator and moves forward when
// the active step is valid. Violations are stored on the session. On the
// pickup step it fails with wizard.ErrSubmitRequired.
type AdvanceStepCommandHandler struct {
	repo ports.WizardRepository
}

// NewAdvanceStepCommandHandler creates a handler backed by repo.
func NewAdvanceStepCommandHandler(repo ports.WizardRepository) AdvanceStepCommandHandler {
	return AdvanceStepCommandHandler{repo: repo}
}

// Handle reports whether the active step validated.
func (h AdvanceStepCommandHandler) Handle(ctx context.Context, cmd AdvanceStepCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var advanced bool
	_, err := h.repo.Modify(ctx, cmd.WizardID(), func(w *wizard.Wizard) error {
		var err error
		advanced, err = w.Advance()
		return err
	})
	if err != nil {
		return false, err
	}

	return advanced, nil
}
