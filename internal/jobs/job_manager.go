package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderwizard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	wizardSweepJob *WizardSweepJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	expireWizardsHandler commands.ExpireWizardsCommandHandler,
	sweepSchedule string,
	wizardIdleTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		wizardSweepJob: NewWizardSweepJob(expireWizardsHandler, sweepSchedule, wizardIdleTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.wizardSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start wizard sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.wizardSweepJob.Stop()
}
