package commands

import (
	"context"

	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/core/ports"
)

// SubmitWizardCommandHandler validates the Pickup step, hands the form to the
// dispatcher and moves the session to Summary. The dispatch outcome never
// reaches the handler.
//
// Example:
//
//	handler := NewSubmitWizardCommandHandler(wizardRepo, dispatcher)
//	cmd, _ := NewSubmitWizardCommand(id)
//	submitted, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, wizard.ErrSubmitOutsidePickup) {
//	    // the session is not on the pickup step
//	}
type SubmitWizardCommandHandler struct {
	repo       ports.WizardRepository
	dispatcher wizard.Dispatcher
}

// NewSubmitWizardCommandHandler creates a handler that submits through dispatcher.
func NewSubmitWizardCommandHandler(
	repo ports.WizardRepository,
	dispatcher wizard.Dispatcher,
) SubmitWizardCommandHandler {
	return SubmitWizardCommandHandler{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

// Handle reports whether the Pickup step validated and the form was dispatched.
func (h SubmitWizardCommandHandler) Handle(ctx context.Context, cmd SubmitWizardCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var submitted bool
	_, err := h.repo.Modify(ctx, cmd.WizardID(), func(w *wizard.Wizard) error {
		ok, submitErr := w.Submit(ctx, h.dispatcher)
		submitted = ok
		return submitErr
	})
	if err != nil {
		return false, err
	}

	return submitted, nil
}
