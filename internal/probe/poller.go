package probe

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/probectl/probectl/internal/errors"
	"github.com/probectl/probectl/internal/logging"
)

// Poll timing.
const (
	// AttemptTimeout bounds every attempt made while polling, independent
	// of the overall deadline.
	AttemptTimeout = 2 * time.Second

	// DefaultDeadline bounds a poll when the caller supplies no deadline.
	DefaultDeadline = 30 * time.Second

	// retryInterval paces attempts so endpoints that fail instantly do
	// not cause a tight spin.
	retryInterval = 250 * time.Millisecond
)

// Prober executes a single probe attempt. *Executor implements it.
type Prober interface {
	Do(ctx context.Context, req Request) error
}

// Attempt reports the outcome of one poll attempt. Err is nil for the
// attempt that succeeded.
type Attempt struct {
	N       int
	Elapsed time.Duration
	Err     error
}

// Poller retries a request until an attempt succeeds or an overall
// deadline passes.
type Poller struct {
	prober Prober
	clock  clockwork.Clock

	// OnAttempt, when set, is called after every attempt. Used for
	// progress display; it must not block.
	OnAttempt func(Attempt)
}

// NewPoller returns a Poller driving the given prober on the real clock.
func NewPoller(prober Prober) *Poller {
	return &Poller{prober: prober, clock: clockwork.NewRealClock()}
}

// SetClock replaces the poller's clock. Tests install a fake clock here.
func (p *Poller) SetClock(clock clockwork.Clock) {
	p.clock = clock
}

// Wait probes req until an attempt succeeds or deadline elapses. Each
// attempt runs with the fixed AttemptTimeout; the request's own timeout
// is ignored. At least one attempt is made even when deadline is zero or
// negative. On failure the last attempt's error is returned. Only
// transport and status failures are retried; a validation failure is
// returned after the first attempt.
func (p *Poller) Wait(ctx context.Context, req Request, deadline time.Duration) error {
	req.Timeout = AttemptTimeout
	start := p.clock.Now()

	var lastErr error
	for attempt := 1; ; attempt++ {
		err := p.prober.Do(ctx, req)
		if p.OnAttempt != nil {
			p.OnAttempt(Attempt{N: attempt, Elapsed: p.clock.Since(start), Err: err})
		}
		if err == nil {
			logging.Debug("probe ready", "url", req.URL(), "attempts", attempt, "elapsed", p.clock.Since(start))
			return nil
		}
		lastErr = err
		logging.Debug("attempt failed", "url", req.URL(), "attempt", attempt, "error", err)

		// A malformed request fails every attempt the same way; waiting
		// out the deadline cannot change it.
		var probeErr *errors.ProbeError
		if errors.As(err, &probeErr) && probeErr.Code == errors.ExitValidation {
			return lastErr
		}

		if ctx.Err() != nil {
			return lastErr
		}
		if p.clock.Since(start)+retryInterval >= deadline {
			logging.Warn("deadline reached", "url", req.URL(), "attempts", attempt, "deadline", deadline)
			return lastErr
		}
		p.clock.Sleep(retryInterval)
	}
}
