package iomodel

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
)

// DigitalOutput consumes a bool port and mirrors it onto a digital pin
// (an LED in the bundled examples). In simulation it records the received
// levels so tests and observers can inspect them.
type DigitalOutput struct {
	devs.Component

	In *devs.TypedPort[bool]

	level   bool
	history []bool
}

// NewDigitalOutput creates a passive digital sink.
func NewDigitalOutput(id string) *DigitalOutput {
	d := &DigitalOutput{Component: devs.NewComponent(id)}
	d.In = devs.AddInPort[bool](&d.Component, "in")
	return d
}

// ExternalTransition latches every received level in arrival order.
func (d *DigitalOutput) ExternalTransition(elapsed float64) {
	for _, v := range d.In.Bag() {
		d.level = v
		d.history = append(d.history, v)
		logrus.Debugf("%s: level=%v", d.ID(), v)
	}
}

// InternalTransition never fires: the sink is permanently passive.
func (d *DigitalOutput) InternalTransition() {}

// Output emits nothing.
func (d *DigitalOutput) Output() {}

// TimeAdvance returns +Inf.
func (d *DigitalOutput) TimeAdvance() float64 { return math.Inf(1) }

// Level returns the most recently latched level.
func (d *DigitalOutput) Level() bool { return d.level }

// History returns every level received, in arrival order.
func (d *DigitalOutput) History() []bool { return d.history }

// StateString implements devs.StateReporter.
func (d *DigitalOutput) StateString() string {
	return fmt.Sprintf("Level: %v", d.level)
}
