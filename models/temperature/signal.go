package temperature

import (
	"fmt"

	"github.com/control-sim/control-sim/devs"
)

// hotThreshold separates the cool (blue LED, silent) and hot (red LED,
// buzzer) regimes, in Celsius.
const hotThreshold = 26.5

// hotBuzzerDuty is the buzzer duty applied at or above the threshold.
const hotBuzzerDuty = 5

// Signal turns Celsius readings into LED and buzzer commands.
type Signal struct {
	devs.Component

	InCelsius *devs.TypedPort[float64]

	OutRed    *devs.TypedPort[bool]
	OutBlue   *devs.TypedPort[bool]
	OutBuzzer *devs.TypedPort[int]

	celsius    float64
	redOn      bool
	blueOn     bool
	buzzerDuty int
}

// NewSignal creates the signal model.
func NewSignal(id string) *Signal {
	s := &Signal{Component: devs.NewComponent(id)}
	s.InCelsius = devs.AddInPort[float64](&s.Component, "inCelsius")
	s.OutRed = devs.AddOutPort[bool](&s.Component, "outRed")
	s.OutBlue = devs.AddOutPort[bool](&s.Component, "outBlue")
	s.OutBuzzer = devs.AddOutPort[int](&s.Component, "outBuzzer")
	return s
}

// InternalTransition is a pure heartbeat.
func (s *Signal) InternalTransition() {}

// ExternalTransition re-evaluates the threshold for every reading.
func (s *Signal) ExternalTransition(elapsed float64) {
	for _, c := range s.InCelsius.Bag() {
		s.celsius = c
		if c < hotThreshold {
			s.blueOn = true
			s.redOn = false
			s.buzzerDuty = 0
		} else {
			s.redOn = true
			s.blueOn = false
			s.buzzerDuty = hotBuzzerDuty
		}
	}
}

// Output emits both LED levels and the buzzer duty.
func (s *Signal) Output() {
	s.OutRed.AddMessage(s.redOn)
	s.OutBlue.AddMessage(s.blueOn)
	s.OutBuzzer.AddMessage(s.buzzerDuty)
}

// TimeAdvance returns the report interval.
func (s *Signal) TimeAdvance() float64 { return sensorPeriod }

// StateString implements devs.StateReporter.
func (s *Signal) StateString() string {
	return fmt.Sprintf("Temperature: %g,Red: %v,Blue: %v,Buzzer: %d",
		s.celsius, s.redOn, s.blueOn, s.buzzerDuty)
}
