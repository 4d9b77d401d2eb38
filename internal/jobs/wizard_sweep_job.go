package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderwizard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WizardSweepJob periodically drops wizard sessions that have been idle
// longer than the configured TTL.
type WizardSweepJob struct {
	handler  commands.ExpireWizardsCommandHandler
	schedule string
	idleFor  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWizardSweepJob creates a sweep job. schedule uses the standard cron
// syntax or a descriptor such as "@every 1m".
func NewWizardSweepJob(
	handler commands.ExpireWizardsCommandHandler,
	schedule string,
	idleFor time.Duration,
	logger *slog.Logger,
) *WizardSweepJob {
	return &WizardSweepJob{
		handler:  handler,
		schedule: schedule,
		idleFor:  idleFor,
		cron:     cron.New(),
		logger:   logger.With("component", "wizard_sweep_job"),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *WizardSweepJob) Start() error {
	cmd, err := commands.NewExpireWizardsCommand(j.idleFor)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		j.sweep(context.Background(), cmd)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Wizard sweep job started",
		"schedule", j.schedule, "idle_for", j.idleFor)
	return nil
}

// RunOnce performs a single sweep outside the schedule.
func (j *WizardSweepJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewExpireWizardsCommand(j.idleFor)
	if err != nil {
		return 0, err
	}
	return j.handler.Handle(ctx, cmd)
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *WizardSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Wizard sweep job stopped")
}

func (j *WizardSweepJob) sweep(ctx context.Context, cmd commands.ExpireWizardsCommand) {
	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Wizard sweep failed", "error", err)
		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Idle wizards removed", "count", removed)
	}
}
