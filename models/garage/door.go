package garage

import (
	"fmt"

	"github.com/control-sim/control-sim/devs"
)

// doorPeriod is the door's self-report interval.
const doorPeriod = 0.1

// Door toggles its state (mirrored on an LED) every time the lock grants
// authorization: opening if closed, closing if open.
type Door struct {
	devs.Component

	In *devs.TypedPort[bool]

	OutLED *devs.TypedPort[bool]

	lightOn bool
}

// NewDoor creates the door model, closed (LED off).
func NewDoor(id string) *Door {
	d := &Door{Component: devs.NewComponent(id)}
	d.In = devs.AddInPort[bool](&d.Component, "in")
	d.OutLED = devs.AddOutPort[bool](&d.Component, "outLED")
	return d
}

// InternalTransition is a pure heartbeat.
func (d *Door) InternalTransition() {}

// ExternalTransition toggles on every authorized pulse.
func (d *Door) ExternalTransition(elapsed float64) {
	for _, authorized := range d.In.Bag() {
		if authorized {
			d.lightOn = !d.lightOn
		}
	}
}

// Output emits the LED level.
func (d *Door) Output() {
	d.OutLED.AddMessage(d.lightOn)
}

// TimeAdvance returns the self-report interval.
func (d *Door) TimeAdvance() float64 { return doorPeriod }

// LightOn returns the door/LED state.
func (d *Door) LightOn() bool { return d.lightOn }

// StateString implements devs.StateReporter.
func (d *Door) StateString() string {
	return fmt.Sprintf("Light: %v", d.lightOn)
}
