// Package queries contains read operations of the CQRS architecture.
// Queries never change wizard sessions or stored orders.
package queries

import (
	"errors"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/pkg/guard"

	"golang.org/x/text/language"
)

var ErrGetWizardQueryIsNotConstructed = errors.New(
	"GetWizardQuery must be created via NewGetWizardQuery constructor",
)

// GetWizardQuery reads one wizard session, with messages rendered in locale.
//
// Example:
//
//	query, err := NewGetWizardQuery(id, language.English)
//	if err != nil {
//	    return err
//	}
//	view, err := NewGetWizardQueryHandler(wizardRepo).Handle(ctx, query)
type GetWizardQuery struct {
	wizardID kernel.UUID
	locale   language.Tag

	guard guard.ConstructorGuard
}

// NewGetWizardQuery creates a query for the given session and locale.
func NewGetWizardQuery(wizardID kernel.UUID, locale language.Tag) (GetWizardQuery, error) {
	if err := wizardID.Validate(); err != nil {
		return GetWizardQuery{}, err
	}

	return GetWizardQuery{
		wizardID: wizardID,
		locale:   locale,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWizardQuery) Validate() error {
	return q.guard.Validate(ErrGetWizardQueryIsNotConstructed)
}

// WizardID returns the session to read.
func (q GetWizardQuery) WizardID() kernel.UUID {
	return q.wizardID
}

// Locale returns the language used for messages.
func (q GetWizardQuery) Locale() language.Tag {
	return q.locale
}

// GetWizardQueryResponse is the rendered view of a wizard session.
// Errors maps field names to translated messages; Notice is empty unless
// ShowNotice is true.
type GetWizardQueryResponse struct {
	ID         kernel.UUID
	Step       wizard.Step
	StepName   string
	Progress   int
	Form       form.State
	Errors     map[string]string
	ShowNotice bool
	Notice     string
}
