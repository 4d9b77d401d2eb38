package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/core/ports"
)

// SetFieldCommandHandler applies field edits. No validation runs on edit.
type SetFieldCommandHandler struct {
	repo ports.WizardRepository
}

// NewSetFieldCommandHandler creates a handler backed by repo.
func NewSetFieldCommandHandler(repo ports.WizardRepository) SetFieldCommandHandler {
	return SetFieldCommandHandler{repo: repo}
}

// Handle replaces the field value in the stored session.
func (h SetFieldCommandHandler) Handle(ctx context.Context, cmd SetFieldCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.repo.Modify(ctx, cmd.WizardID(), func(w *wizard.Wizard) error {
		return w.SetField(cmd.Field(), cmd.Value())
	})
	return err
}
