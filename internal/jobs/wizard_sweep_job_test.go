package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderwizard/internal/adapters/out/memory"
	"orderwizard/internal/core/application/usecases/commands"
	"orderwizard/internal/core/domain/model/kernel"
	"orderwizard/internal/core/domain/model/wizard"
	"orderwizard/internal/jobs"
	"orderwizard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWizardSweepJob_RunOnce_RemovesIdleSessions(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)}
	repo := memory.NewWizardRepository(clock.Now)

	stale, err := wizard.NewWizard(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, stale))

	clock.now = clock.now.Add(20 * time.Minute)
	fresh, err := wizard.NewWizard(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, repo.Add(ctx, fresh))

	clock.now = clock.now.Add(15 * time.Minute)
	handler := commands.NewExpireWizardsCommandHandler(repo, clock.Now)
	job := jobs.NewWizardSweepJob(handler, "@every 1m", 30*time.Minute, discardLogger())

	removed, err := job.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Len())

	_, err = repo.Get(ctx, fresh.ID())
	assert.NoError(t, err)
}

func TestWizardSweepJob_Start_RejectsInvalidConfig(t *testing.T) {
	repo := memory.NewWizardRepository(nil)
	handler := commands.NewExpireWizardsCommandHandler(repo, nil)

	t.Run("bad schedule", func(t *testing.T) {
		job := jobs.NewWizardSweepJob(handler, "every minute", time.Minute, discardLogger())
		assert.Error(t, job.Start())
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		job := jobs.NewWizardSweepJob(handler, "@every 1m", 0, discardLogger())
		assert.ErrorIs(t, job.Start(), errs.ErrValueIsOutOfRange)
	})
}

func TestJobManager_StartAndStop(t *testing.T) {
	repo := memory.NewWizardRepository(nil)
	handler := commands.NewExpireWizardsCommandHandler(repo, nil)

	jm := jobs.NewJobManager(handler, "@every 1h", time.Minute, discardLogger())
	require.NoError(t, jm.StartAll())
	jm.StopAll()
}
