package queries

import (
	"context"

	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
	"orderwizard/internal/pkg/i18n"
)

// GetWizardQueryHandler renders wizard sessions for presentation.
type GetWizardQueryHandler struct {
	repo ports.WizardRepository
}

// NewGetWizardQueryHandler creates a handler backed by repo.
func NewGetWizardQueryHandler(repo ports.WizardRepository) GetWizardQueryHandler {
	return GetWizardQueryHandler{repo: repo}
}

// Handle returns the current view of the session.
func (h GetWizardQueryHandler) Handle(ctx context.Context, query GetWizardQuery) (GetWizardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWizardQueryResponse{}, err
	}

	w, err := h.repo.Get(ctx, query.WizardID())
	if err != nil {
		return GetWizardQueryResponse{}, err
	}

	resp := GetWizardQueryResponse{
		ID:         w.ID(),
		Step:       w.Step(),
		StepName:   w.Step().String(),
		Progress:   w.Step().Progress(),
		Form:       w.Form(),
		Errors:     i18n.TranslateValues(query.Locale(), w.Errors().Keys()),
		ShowNotice: services.ShowNotice(w.Form()),
	}
	if resp.ShowNotice {
		resp.Notice = i18n.Translate(query.Locale(), services.NoticeText)
	}

	return resp, nil
}
