package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/core/ports"
)

// RetreatStepCommandHandler moves a session back one step.
type RetreatStepCommandHandler struct {
	repo ports.WizardRepository
}

// NewRetreatStepCommandHandler creates a handler backed by repo.
func NewRetreatStepCommandHandler(repo ports.WizardRepository) RetreatStepCommandHandler {
	return RetreatStepCommandHandler{repo: repo}
}

// Handle reports whether the step changed; it is false on Contact.
func (h RetreatStepCommandHandler) Handle(ctx context.Context, cmd RetreatStepCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var moved bool
	_, err := h.repo.Modify(ctx, cmd.WizardID(), func(w *wizard.Wizard) error {
		moved = w.Retreat()
		return nil
	})
	if err != nil {
		return false, err
	}

	return moved, nil
}
