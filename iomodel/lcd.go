package iomodel

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
)

// LCDOutput consumes opaque draw-command strings. The core models own the
// string contents (row/column/text/color); this sink only records them, it
// never renders.
type LCDOutput struct {
	devs.Component

	In *devs.TypedPort[string]

	last    string
	history []string
}

// NewLCDOutput creates a passive LCD sink.
func NewLCDOutput(id string) *LCDOutput {
	l := &LCDOutput{Component: devs.NewComponent(id)}
	l.In = devs.AddInPort[string](&l.Component, "in")
	return l
}

// ExternalTransition records every draw command in arrival order.
func (l *LCDOutput) ExternalTransition(elapsed float64) {
	for _, s := range l.In.Bag() {
		l.last = s
		l.history = append(l.history, s)
		logrus.Debugf("%s: %s", l.ID(), s)
	}
}

// InternalTransition never fires: the sink is permanently passive.
func (l *LCDOutput) InternalTransition() {}

// Output emits nothing.
func (l *LCDOutput) Output() {}

// TimeAdvance returns +Inf.
func (l *LCDOutput) TimeAdvance() float64 { return math.Inf(1) }

// Last returns the most recent draw command.
func (l *LCDOutput) Last() string { return l.last }

// History returns every draw command received, in arrival order.
func (l *LCDOutput) History() []string { return l.history }

// StateString implements devs.StateReporter.
func (l *LCDOutput) StateString() string {
	return fmt.Sprintf("Last: %s", l.last)
}
