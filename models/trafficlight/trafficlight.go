// Package trafficlight implements the self-clocked traffic light: it is the
// one bundled system with no external inputs, cycling red -> green ->
// yellow purely on its own timer.
package trafficlight

import (
	"fmt"

	"github.com/control-sim/control-sim/devs"
)

const (
	// greenRedTime is the dwell after switching to green or yellow.
	greenRedTime = 6.0
	// yellowTime is the dwell after switching back to red.
	yellowTime = 2.0
)

// Light phases, encoded as the LED pair on the RGB header: red, green, or
// both (yellow).
const (
	phaseRed = iota
	phaseGreen
	phaseYellow
)

// TrafficLight cycles through its phases on an internal counter. The dwell
// times follow the reference controller, including its quirk of applying
// the short dwell on the transition back to red rather than on yellow.
type TrafficLight struct {
	devs.Component

	OutRed   *devs.TypedPort[bool]
	OutGreen *devs.TypedPort[bool]

	phase   int
	redOn   bool
	greenOn bool
	sigma   float64
}

// NewTrafficLight creates the light, red, with the first change due after
// the long dwell.
func NewTrafficLight(id string) *TrafficLight {
	t := &TrafficLight{
		Component: devs.NewComponent(id),
		phase:     phaseRed,
		redOn:     true,
		sigma:     greenRedTime,
	}
	t.OutRed = devs.AddOutPort[bool](&t.Component, "outRed")
	t.OutGreen = devs.AddOutPort[bool](&t.Component, "outGreen")
	return t
}

// Banner returns the static draw commands shown once at startup.
func (t *TrafficLight) Banner() []string {
	return []string{
		"BSP_LCD_DrawString(0,0,Traffic Light V1,LCD_WHITE)",
		"BSP_LCD_DrawString(0,1, GR = 6s Y = 2s ,LCD_WHITE)",
	}
}

// InternalTransition advances to the next phase and re-arms the dwell
// timer.
func (t *TrafficLight) InternalTransition() {
	t.phase = (t.phase + 1) % 3

	if t.phase == phaseGreen || t.phase == phaseYellow {
		t.sigma = greenRedTime
	} else {
		t.sigma = yellowTime
	}

	switch t.phase {
	case phaseRed:
		t.redOn = true
		t.greenOn = false
	case phaseGreen:
		t.redOn = false
		t.greenOn = true
	case phaseYellow:
		// Red + green on the RGB header reads as yellow.
		t.redOn = true
		t.greenOn = true
	}
}

// ExternalTransition ignores input; the light is purely self-clocked.
func (t *TrafficLight) ExternalTransition(elapsed float64) {}

// Output emits both LED levels.
func (t *TrafficLight) Output() {
	t.OutRed.AddMessage(t.redOn)
	t.OutGreen.AddMessage(t.greenOn)
}

// TimeAdvance returns the remaining dwell.
func (t *TrafficLight) TimeAdvance() float64 { return t.sigma }

// Lights returns the red and green LED levels.
func (t *TrafficLight) Lights() (red, green bool) { return t.redOn, t.greenOn }

// StateString implements devs.StateReporter.
func (t *TrafficLight) StateString() string {
	return fmt.Sprintf("Counter: %d,RedLight: %v,GreenLight: %v", t.phase, t.redOn, t.greenOn)
}
