package devs

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Clock is the wall-clock source for real-time execution. It is an
// interface so tests (and embedded targets with their own timers) can
// substitute a controllable source.
type Clock interface {
	Now() time.Time
	// After returns a channel that delivers the current time once d has
	// elapsed.
	After(d time.Duration) <-chan time.Time
}

// WallClock is the default Clock backed by the system timer.
type WallClock struct{}

// Now returns the current wall-clock time.
func (WallClock) Now() time.Time { return time.Now() }

// After waits for the duration to elapse on the system timer.
func (WallClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RunRealTime drives the simulation against wall-clock time: step 2 of the
// instant protocol becomes a blocking wait until the wall clock reaches the
// next event time. Simulated seconds map 1:1 onto wall seconds measured
// from the moment RunRealTime is called.
//
// Missed-deadline handling is best-effort: if the wall clock is already
// past the due time the instant fires immediately, a warning is logged, and
// no catch-up compensation is applied.
//
// The run stops when the next event would exceed duration, when no model
// will ever fire again, or when ctx is cancelled -- cancellation is the
// only halt primitive; individual models have no cancellation concept.
func (rc *RootCoordinator) RunRealTime(ctx context.Context, clk Clock, duration float64) error {
	start := clk.Now()
	for {
		tNext := rc.nextTime()
		if math.IsInf(tNext, 1) || tNext > duration {
			logrus.Infof("[t=%.4f] real-time run ended", rc.clock)
			return nil
		}

		deadline := start.Add(time.Duration(tNext * float64(time.Second)))
		now := clk.Now()
		if late := now.Sub(deadline); late > 0 {
			logrus.Warnf("[t=%.4f] missed deadline by %s, firing immediately", tNext, late)
		} else {
			select {
			case <-clk.After(deadline.Sub(now)):
			case <-ctx.Done():
				logrus.Infof("[t=%.4f] real-time run halted", rc.clock)
				return ctx.Err()
			}
		}

		rc.clock = tNext
		rc.fireInstant(tNext)
	}
}
