package http

import (
	"time"

	"orderwizard/internal/core/application/usecases/queries"
	"orderwizard/internal/core/domain/model/form"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FieldValue is the body of PUT /api/wizards/{id}/fields/{field}.
type FieldValue struct {
	Value *string `json:"value"`
}

// Wizard is the presentation of a wizard session.
type Wizard struct {
	ID         string            `json:"id"`
	Step       int               `json:"step"`
	StepName   string            `json:"stepName"`
	Progress   int               `json:"progress"`
	Form       form.State        `json:"form"`
	Errors     map[string]string `json:"errors"`
	ShowNotice bool              `json:"showNotice"`
	Notice     string            `json:"notice,omitempty"`
}

// CreatedOrder is returned by the order intake.
type CreatedOrder struct {
	ID string `json:"id"`
}

// ReceivedOrder is an order of GET /api/orders and GET /api/orders/{id}.
type ReceivedOrder struct {
	ID         string     `json:"id"`
	ReceivedAt time.Time  `json:"receivedAt"`
	Form       form.State `json:"form"`
}

func toWizard(view queries.GetWizardQueryResponse) Wizard {
	return Wizard{
		ID:         view.ID.String(),
		Step:       int(view.Step),
		StepName:   view.StepName,
		Progress:   view.Progress,
		Form:       view.Form,
		Errors:     view.Errors,
		ShowNotice: view.ShowNotice,
		Notice:     view.Notice,
	}
}
