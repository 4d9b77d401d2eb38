// Package jobs provides scheduled background tasks for the order wizard.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// WizardSweepJob removes wizard sessions that nobody read or modified for
// longer than WIZARD_IDLE_TTL. It runs on WIZARD_SWEEP_SCHEDULE, "@every 1m"
// by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireWizardsHandler, "@every 1m", 30*time.Minute, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick. An invalid schedule
// or a non-positive TTL makes StartAll fail.
package jobs
