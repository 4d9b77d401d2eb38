package commands

import (
	"context"
	"time"

	"orderwizard/internal/core/ports"
)

// ExpireWizardsCommandHandler removes idle wizard sessions.
type ExpireWizardsCommandHandler struct {
	repo ports.WizardRepository
	now  func() time.Time
}

// NewExpireWizardsCommandHandler creates a handler backed by repo.
func NewExpireWizardsCommandHandler(repo ports.WizardRepository, now func() time.Time) ExpireWizardsCommandHandler {
	if now == nil {
		now = time.Now
	}

	return ExpireWizardsCommandHandler{
		repo: repo,
		now:  now,
	}
}

// Handle returns the number of removed sessions.
func (h ExpireWizardsCommandHandler) Handle(ctx context.Context, cmd ExpireWizardsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.repo.DeleteIdleSince(ctx, h.now().Add(-cmd.IdleFor()))
}
