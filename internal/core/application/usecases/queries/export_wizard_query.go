package queries

import (
	"errors"

	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/pkg/guard"
)

var ErrExportWizardQueryIsNotConstructed = errors.New(
	"ExportWizardQuery must be created via NewExportWizardQuery constructor",
)

// ExportWizardQuery renders the current form of a session as a CSV document.
// Export is available on every step and never validates.
type ExportWizardQuery struct {
	wizardID kernel.UUID

	guard guard.ConstructorGuard
}

// NewExportWizardQuery creates an export query for the given session.
func NewExportWizardQuery(wizardID kernel.UUID) (ExportWizardQuery, error) {
	if err := wizardID.Validate(); err != nil {
		return ExportWizardQuery{}, err
	}

	return ExportWizardQuery{
		wizardID: wizardID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ExportWizardQuery) Validate() error {
	return q.guard.Validate(ErrExportWizardQueryIsNotConstructed)
}

// WizardID returns the session to export.
func (q ExportWizardQuery) WizardID() kernel.UUID {
	return q.wizardID
}

// ExportWizardQueryResponse is a downloadable document.
type ExportWizardQueryResponse struct {
	FileName    string
	ContentType string
	Content     []byte
}
