package iomodel

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
)

// PWMOutput consumes integer duty-cycle values (the buzzer in the bundled
// examples). Duty 0 means silent.
type PWMOutput struct {
	devs.Component

	In *devs.TypedPort[int]

	duty    int
	history []int
}

// NewPWMOutput creates a passive PWM sink.
func NewPWMOutput(id string) *PWMOutput {
	p := &PWMOutput{Component: devs.NewComponent(id)}
	p.In = devs.AddInPort[int](&p.Component, "in")
	return p
}

// ExternalTransition latches every received duty value in arrival order.
func (p *PWMOutput) ExternalTransition(elapsed float64) {
	for _, v := range p.In.Bag() {
		p.duty = v
		p.history = append(p.history, v)
		logrus.Debugf("%s: duty=%d", p.ID(), v)
	}
}

// InternalTransition never fires: the sink is permanently passive.
func (p *PWMOutput) InternalTransition() {}

// Output emits nothing.
func (p *PWMOutput) Output() {}

// TimeAdvance returns +Inf.
func (p *PWMOutput) TimeAdvance() float64 { return math.Inf(1) }

// Duty returns the most recently latched duty cycle.
func (p *PWMOutput) Duty() int { return p.duty }

// History returns every duty value received, in arrival order.
func (p *PWMOutput) History() []int { return p.history }

// StateString implements devs.StateReporter.
func (p *PWMOutput) StateString() string {
	return fmt.Sprintf("Duty: %d", p.duty)
}
