// Package temperature implements the temperature monitor: a sensor model
// that scales raw microcontroller readings to Celsius and a signal model
// that drives the red/blue LEDs and the buzzer from a threshold.
package temperature

import (
	"fmt"

	"github.com/control-sim/control-sim/devs"
)

// sensorPeriod is the sensor's report interval.
const sensorPeriod = 1.0

// rawScale converts raw ADC readings to degrees Celsius.
const rawScale = 100000.0

// Sensor acquires raw temperature readings and republishes them in Celsius
// together with an LCD status line. The garage system reuses it to feed the
// lock's frozen-door display.
type Sensor struct {
	devs.Component

	InRaw *devs.TypedPort[float64]

	Out    *devs.TypedPort[float64]
	OutLCD *devs.TypedPort[string]

	celsius float64
	lcd     string
}

// NewSensor creates the sensor model.
func NewSensor(id string) *Sensor {
	s := &Sensor{Component: devs.NewComponent(id)}
	s.InRaw = devs.AddInPort[float64](&s.Component, "inRaw")
	s.Out = devs.AddOutPort[float64](&s.Component, "out")
	s.OutLCD = devs.AddOutPort[string](&s.Component, "outLCD")
	s.lcd = "BSP_LCD_DrawString(0,0,Temperature V2,LCD_WHITE)"
	return s
}

// InternalTransition is a pure heartbeat; readings only change on input.
func (s *Sensor) InternalTransition() {}

// ExternalTransition scales every raw reading to Celsius.
func (s *Sensor) ExternalTransition(elapsed float64) {
	for _, raw := range s.InRaw.Bag() {
		s.celsius = raw / rawScale
		s.lcd = fmt.Sprintf("BSP_LCD_DrawString(0,2, Temp: %f *C,LCD_WHITE)", s.celsius)
	}
}

// Output emits the Celsius reading and the LCD line.
func (s *Sensor) Output() {
	s.Out.AddMessage(s.celsius)
	s.OutLCD.AddMessage(s.lcd)
}

// TimeAdvance returns the report interval.
func (s *Sensor) TimeAdvance() float64 { return sensorPeriod }

// Celsius returns the last scaled reading.
func (s *Sensor) Celsius() float64 { return s.celsius }

// StateString implements devs.StateReporter.
func (s *Sensor) StateString() string {
	return fmt.Sprintf("Temperature: %g", s.celsius)
}
