package devs

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Observer receives a read-only report after every model transition. It is
// a side channel for logging and trace collection; nothing an observer does
// can feed back into simulation state.
type Observer interface {
	OnTransition(clock float64, modelID string, kind TransitionKind, state string)
}

// TransitionKind labels the transition that produced an observer report.
type TransitionKind string

const (
	// TransitionInternal is a spontaneous transition driven by the model's
	// own clock reaching zero.
	TransitionInternal TransitionKind = "internal"
	// TransitionExternal is a transition triggered by messages arriving on
	// the model's input ports.
	TransitionExternal TransitionKind = "external"
)

// RootCoordinator drives simulated time forward over a flattened model
// tree. It owns the global clock: transitions of all models due at one
// instant are processed as a single atomic batch, so there is no data race
// between models even though their effects are mutually visible within the
// instant.
//
// Thread-safety: NOT thread-safe. A coordinator is a value owned by one
// goroutine; multiple independent simulations can coexist in one process by
// constructing one coordinator each.
type RootCoordinator struct {
	clock     float64
	leaves    []Atomic
	routes    map[Port][]Port
	allPorts  []Port
	tLast     []float64
	observers []Observer
}

// NewRootCoordinator flattens the model tree rooted at root and prepares a
// coordinator with the clock at zero. Couplings were already type-checked
// when the tree was built.
func NewRootCoordinator(root Model) *RootCoordinator {
	leaves := atomics(root)
	rc := &RootCoordinator{
		leaves: leaves,
		routes: flattenRoutes(root, leaves),
		tLast:  make([]float64, len(leaves)),
	}
	for _, a := range leaves {
		rc.allPorts = append(rc.allPorts, a.InPorts()...)
		rc.allPorts = append(rc.allPorts, a.OutPorts()...)
	}
	return rc
}

// Attach subscribes an observer to all transition reports.
func (rc *RootCoordinator) Attach(obs Observer) {
	rc.observers = append(rc.observers, obs)
}

// Clock returns the current simulated time.
func (rc *RootCoordinator) Clock() float64 { return rc.clock }

// Run advances simulated time until the next event would exceed duration,
// or until no model will ever fire again. There is no internal terminal
// state: a network with periodic models runs until the budget stops it.
func (rc *RootCoordinator) Run(duration float64) {
	for {
		tNext := rc.nextTime()
		if math.IsInf(tNext, 1) || tNext > duration {
			break
		}
		rc.clock = tNext
		logrus.Debugf("[t=%.4f] firing instant", tNext)
		rc.fireInstant(tNext)
	}
	logrus.Infof("[t=%.4f] simulation ended", rc.clock)
}

// nextTime computes min(tLast_i + sigma_i) over all atomic models.
func (rc *RootCoordinator) nextTime() float64 {
	tNext := math.Inf(1)
	for i, a := range rc.leaves {
		if t := rc.tLast[i] + a.TimeAdvance(); t < tNext {
			tNext = t
		}
	}
	return tNext
}

// fireInstant processes every transition due at tNext as one atomic batch,
// in three phases:
//
//  1. every imminent model (next-event time == tNext) runs Output, and its
//     messages are routed along the flattened couplings; destination bags
//     accumulate, so the observable effect is independent of the order
//     source models are processed;
//  2. every imminent model runs InternalTransition;
//  3. every model holding a non-empty input bag runs ExternalTransition
//     with elapsed = tNext - tLast. A model that fired in phase 2 has
//     tLast == tNext, so its external step sees elapsed 0 -- the confluent
//     rule: internal-then-external, never the reverse.
//
// All port bags are cleared at the end of the instant.
func (rc *RootCoordinator) fireInstant(tNext float64) {
	var imminent []int
	for i, a := range rc.leaves {
		if rc.tLast[i]+a.TimeAdvance() == tNext {
			imminent = append(imminent, i)
		}
	}

	for _, i := range imminent {
		a := rc.leaves[i]
		a.Output()
		for _, src := range a.OutPorts() {
			if src.Empty() {
				continue
			}
			for _, dst := range rc.routes[src] {
				src.routeTo(dst)
			}
		}
	}

	for _, i := range imminent {
		a := rc.leaves[i]
		a.InternalTransition()
		rc.tLast[i] = tNext
		rc.checkContract(a)
		rc.notify(a, TransitionInternal)
	}

	for i, a := range rc.leaves {
		if !hasInput(a) {
			continue
		}
		a.ExternalTransition(tNext - rc.tLast[i])
		rc.tLast[i] = tNext
		rc.checkContract(a)
		rc.notify(a, TransitionExternal)
	}

	for _, p := range rc.allPorts {
		p.Clear()
	}
}

// hasInput reports whether any of a's input ports received messages in the
// current instant.
func hasInput(a Atomic) bool {
	for _, p := range a.InPorts() {
		if !p.Empty() {
			return true
		}
	}
	return false
}

// checkContract validates sigma after a transition. A transition that
// leaves sigma negative or undefined is a model defect, not a recoverable
// runtime condition: transitions are deterministic, so the failure would
// reproduce on every run.
func (rc *RootCoordinator) checkContract(a Atomic) {
	sigma := a.TimeAdvance()
	if math.IsNaN(sigma) || sigma < 0 {
		panic("devs: model " + a.ID() + " violated the time-advance contract (sigma undefined or negative)")
	}
}

func (rc *RootCoordinator) notify(a Atomic, kind TransitionKind) {
	if len(rc.observers) == 0 {
		return
	}
	state := ""
	if sr, ok := a.(StateReporter); ok {
		state = sr.StateString()
	}
	for _, obs := range rc.observers {
		obs.OnTransition(rc.clock, a.ID(), kind, state)
	}
}
