package queries

import (
	"context"

	"orderwizard/internal/core/domain/services"
	"orderwizard/internal/core/ports"
)

// ExportWizardQueryHandler produces pedido.csv for a session.
type ExportWizardQueryHandler struct {
	repo ports.WizardRepository
}

// NewExportWizardQueryHandler creates a handler backed by repo.
func NewExportWizardQueryHandler(repo ports.WizardRepository) ExportWizardQueryHandler {
	return ExportWizardQueryHandler{repo: repo}
}

// Handle encodes the session form. Step and errors are left untouched.
func (h ExportWizardQueryHandler) Handle(ctx context.Context, query ExportWizardQuery) (ExportWizardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ExportWizardQueryResponse{}, err
	}

	w, err := h.repo.Get(ctx, query.WizardID())
	if err != nil {
		return ExportWizardQueryResponse{}, err
	}

	return ExportWizardQueryResponse{
		FileName:    services.ExportFileName,
		ContentType: services.ExportContentType,
		Content:     services.EncodeCSV(w.Form()),
	}, nil
}
