package devs

import (
	"context"
	"testing"
	"time"
)

// immediateClock waits zero wall time: every After delivers at once. Now is
// pinned to the start instant, so every deadline is "in the future" and the
// wait path is exercised on each instant.
type immediateClock struct {
	start time.Time
}

func (c immediateClock) Now() time.Time { return c.start }

func (c immediateClock) After(d time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.start.Add(d)
	return ch
}

// lateClock reports a wall time far past every deadline. After must never be
// called: a late instant fires immediately.
type lateClock struct {
	start time.Time
	t     *testing.T
}

func (c lateClock) Now() time.Time { return c.start.Add(time.Hour) }

func (c lateClock) After(d time.Duration) <-chan time.Time {
	c.t.Fatal("After called on a missed deadline")
	return nil
}

// stuckClock never delivers on After, so a run can only end by cancellation.
type stuckClock struct {
	start time.Time
}

func (c stuckClock) Now() time.Time                         { return c.start }
func (c stuckClock) After(d time.Duration) <-chan time.Time { return make(chan time.Time) }

func TestRunRealTime_CompletesAndMatchesOfflineSchedule(t *testing.T) {
	// GIVEN a ticker-collector pair on a clock that waits zero wall time
	tick := newTicker("tick", 1.0)
	col := newCollector("col")
	top := NewCoupled("top")
	top.AddComponent(tick)
	top.AddComponent(col)
	top.MustAddCoupling(tick.Out, col.In)
	rc := NewRootCoordinator(top)

	// WHEN the run executes in real-time mode
	err := rc.RunRealTime(context.Background(), immediateClock{start: time.Now()}, 3.0)

	// THEN the schedule is identical to an offline run
	if err != nil {
		t.Fatalf("RunRealTime: %v", err)
	}
	if rc.Clock() != 3.0 {
		t.Errorf("Clock: got %v, want 3.0", rc.Clock())
	}
	if len(col.got) != 3 {
		t.Errorf("collector received %d values, want 3", len(col.got))
	}
}

func TestRunRealTime_MissedDeadline_FiresImmediately(t *testing.T) {
	// GIVEN a wall clock already past every deadline
	tick := newTicker("tick", 1.0)
	top := NewCoupled("top")
	top.AddComponent(tick)
	rc := NewRootCoordinator(top)

	// WHEN the run executes
	err := rc.RunRealTime(context.Background(), lateClock{start: time.Now(), t: t}, 2.0)

	// THEN every instant fires without waiting and the run completes
	if err != nil {
		t.Fatalf("RunRealTime: %v", err)
	}
	if tick.count != 2 {
		t.Errorf("ticker fired %d times, want 2", tick.count)
	}
}

func TestRunRealTime_Cancellation_HaltsBeforeNextInstant(t *testing.T) {
	// GIVEN a cancelled context and a clock that never delivers
	tick := newTicker("tick", 1.0)
	top := NewCoupled("top")
	top.AddComponent(tick)
	rc := NewRootCoordinator(top)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// WHEN the run starts
	err := rc.RunRealTime(ctx, stuckClock{start: time.Now()}, 10.0)

	// THEN it halts with the context error before any instant fires
	if err != context.Canceled {
		t.Fatalf("RunRealTime: got %v, want context.Canceled", err)
	}
	if tick.count != 0 {
		t.Errorf("ticker fired %d times, want 0", tick.count)
	}
	if rc.Clock() != 0 {
		t.Errorf("Clock: got %v, want 0", rc.Clock())
	}
}

func TestRunRealTime_AllPassive_EndsWithoutWaiting(t *testing.T) {
	// GIVEN only passive models and a clock that never delivers
	col := newCollector("col")
	top := NewCoupled("top")
	top.AddComponent(col)
	rc := NewRootCoordinator(top)

	// WHEN the run starts
	err := rc.RunRealTime(context.Background(), stuckClock{start: time.Now()}, 10.0)

	// THEN it returns at once: there is no next event to wait for
	if err != nil {
		t.Fatalf("RunRealTime: %v", err)
	}
}
