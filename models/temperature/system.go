package temperature

import (
	"io"

	"github.com/control-sim/control-sim/devs"
	"github.com/control-sim/control-sim/iomodel"
)

// System is the sensor -> signal chain without adapters.
type System struct {
	Top    *devs.Coupled
	Sensor *Sensor
	Signal *Signal
}

// NewSystem builds the monitor chain.
func NewSystem(id string) *System {
	sensor := NewSensor("temperature")
	signal := NewSignal("temperatureSignal")

	top := devs.NewCoupled(id)
	top.AddComponent(sensor)
	top.AddComponent(signal)
	top.MustAddCoupling(sensor.Out, signal.InCelsius)

	return &System{Top: top, Sensor: sensor, Signal: signal}
}

// SimulationInputs are the trace sources for an offline run.
type SimulationInputs struct {
	RawReadings io.Reader
}

// Simulation couples the monitor to a raw-reading trace and LED/LCD/buzzer
// sinks.
type Simulation struct {
	*System

	RedLED  *iomodel.DigitalOutput
	BlueLED *iomodel.DigitalOutput
	LCD     *iomodel.LCDOutput
	Buzzer  *iomodel.PWMOutput
}

// NewSimulation wires the monitor for trace-driven execution.
func NewSimulation(id string, in SimulationInputs) (*Simulation, error) {
	sys := NewSystem(id)

	readings, err := iomodel.NewFloatStream("temperatureInput", in.RawReadings)
	if err != nil {
		return nil, err
	}

	red := iomodel.NewDigitalOutput("redLED")
	blue := iomodel.NewDigitalOutput("blueLED")
	lcd := iomodel.NewLCDOutput("temperatureLCD")
	buzzer := iomodel.NewPWMOutput("buzzer")

	top := sys.Top
	top.AddComponent(readings)
	top.AddComponent(red)
	top.AddComponent(blue)
	top.AddComponent(lcd)
	top.AddComponent(buzzer)

	top.MustAddCoupling(readings.Out, sys.Sensor.InRaw)
	top.MustAddCoupling(sys.Sensor.OutLCD, lcd.In)
	top.MustAddCoupling(sys.Signal.OutRed, red.In)
	top.MustAddCoupling(sys.Signal.OutBlue, blue.In)
	top.MustAddCoupling(sys.Signal.OutBuzzer, buzzer.In)

	return &Simulation{System: sys, RedLED: red, BlueLED: blue, LCD: lcd, Buzzer: buzzer}, nil
}
