package services

import (
	"context"
	"log/slog"
	"sync"

	"orderwizard/internal/core/domain/model/form"
	"orderwizard/internal/core/ports"
)

// FailureHook observes a failed submission. It runs on the dispatch goroutine.
type FailureHook func(ctx context.Context, state form.State, err error)

// DiscardFailure drops submission failures. It is the default hook: the
// wizard surfaces nothing, logs nothing and retries nothing.
func DiscardFailure(context.Context, form.State, error) {}

// LogFailure returns a hook that records failures as warnings.
func LogFailure(logger *slog.Logger) FailureHook {
	return func(ctx context.Context, _ form.State, err error) {
		logger.WarnContext(ctx, "Order submission failed", "error", err)
	}
}

// SubmissionDispatcher sends the final form to the order-creation endpoint
// without making the caller wait. It satisfies wizard.Dispatcher.
//
// Example:
//
//	dispatcher := services.NewSubmissionDispatcher(client,
//	    services.WithFailureHook(services.LogFailure(logger)))
//	ok, err := w.Submit(ctx, dispatcher)
//	...
//	dispatcher.Wait() // on shutdown
type SubmissionDispatcher struct {
	submitter ports.OrderSubmitter
	onFailure FailureHook
	inFlight  sync.WaitGroup
}

// DispatcherOption configures a SubmissionDispatcher.
type DispatcherOption func(*SubmissionDispatcher)

// WithFailureHook installs hook in place of DiscardFailure.
func WithFailureHook(hook FailureHook) DispatcherOption {
	return func(d *SubmissionDispatcher) {
		if hook != nil {
			d.onFailure = hook
		}
	}
}

// NewSubmissionDispatcher creates a dispatcher that submits through submitter.
func NewSubmissionDispatcher(submitter ports.OrderSubmitter, opts ...DispatcherOption) *SubmissionDispatcher {
	d := &SubmissionDispatcher{
		submitter: submitter,
		onFailure: DiscardFailure,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch starts the submission on its own goroutine and returns at once.
// The submission outlives ctx cancellation: it keeps ctx values only.
// There is no retry and no timeout beyond what the submitter enforces.
func (d *SubmissionDispatcher) Dispatch(ctx context.Context, state form.State) {
	detached := context.WithoutCancel(ctx)

	d.inFlight.Add(1)
	go func() {
		defer d.inFlight.Done()

		if err := d.submitter.Submit(detached, state); err != nil {
			d.onFailure(detached, state, err)
		}
	}()
}

// Wait blocks until every dispatched submission has finished.
func (d *SubmissionDispatcher) Wait() {
	d.inFlight.Wait()
}
