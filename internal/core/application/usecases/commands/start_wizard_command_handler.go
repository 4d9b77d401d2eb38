package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/core/ports"
)

// StartWizardCommandHandler creates wizard sessions.
//
// Example:
//
//	handler := NewStartWizardCommandHandler(wizardRepo)
//	id, err := handler.Handle(ctx, NewStartWizardCommand())
//	if err != nil {
//	    return fmt.Errorf("start wizard: %w", err)
//	}
type StartWizardCommandHandler struct {
	repo ports.WizardRepository
}

// NewStartWizardCommandHandler creates a handler backed by repo.
func NewStartWizardCommandHandler(repo ports.WizardRepository) StartWizardCommandHandler {
	return StartWizardCommandHandler{repo: repo}
}

// Handle stores a fresh wizard and returns its id.
func (h StartWizardCommandHandler) Handle(ctx context.Context, cmd StartWizardCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	w, err := wizard.NewWizard(kernel.NewUUID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.repo.Add(ctx, w); err != nil {
		return kernel.UUID{}, err
	}

	return w.ID(), nil
}
