package garage

import (
	"io"

	"github.com/control-sim/control-sim/devs"
	"github.com/control-sim/control-sim/iomodel"
	"github.com/control-sim/control-sim/models/temperature"
)

// System is the lock -> door chain plus the thermometer feeding the lock's
// frozen-door display, without boundary adapters.
type System struct {
	Top         *devs.Coupled
	Lock        *Lock
	Door        *Door
	Thermometer *temperature.Sensor
}

// NewSystem builds the opener network.
func NewSystem(id string) *System {
	lock := NewLock("garageLock")
	door := NewDoor("garageDoor")
	thermometer := temperature.NewSensor("garageTemperature")

	top := devs.NewCoupled(id)
	top.AddComponent(lock)
	top.AddComponent(door)
	top.AddComponent(thermometer)

	top.MustAddCoupling(lock.Out, door.In)
	top.MustAddCoupling(thermometer.Out, lock.InTemperature)

	return &System{Top: top, Lock: lock, Door: door, Thermometer: thermometer}
}

// SimulationInputs are the trace sources for an offline run.
type SimulationInputs struct {
	Digit       io.Reader
	Submit      io.Reader
	JoystickX   io.Reader
	JoystickY   io.Reader
	RawReadings io.Reader
}

// Simulation couples the opener to its trace inputs and to LED/LCD sinks.
type Simulation struct {
	*System

	LED       *iomodel.DigitalOutput
	LCD       *iomodel.LCDOutput
	FrozenLCD *iomodel.LCDOutput
}

// NewSimulation wires the opener for trace-driven execution.
func NewSimulation(id string, in SimulationInputs) (*Simulation, error) {
	sys := NewSystem(id)

	digit, err := iomodel.NewBoolStream("buttonInput", in.Digit)
	if err != nil {
		return nil, err
	}
	submit, err := iomodel.NewBoolStream("buttonSubmit", in.Submit)
	if err != nil {
		return nil, err
	}
	joyX, err := iomodel.NewIntStream("joystickXInput", in.JoystickX)
	if err != nil {
		return nil, err
	}
	joyY, err := iomodel.NewIntStream("joystickYInput", in.JoystickY)
	if err != nil {
		return nil, err
	}
	readings, err := iomodel.NewFloatStream("temperatureInput", in.RawReadings)
	if err != nil {
		return nil, err
	}

	led := iomodel.NewDigitalOutput("doorLED")
	lcd := iomodel.NewLCDOutput("statusLCD")
	frozen := iomodel.NewLCDOutput("frozenLCD")

	top := sys.Top
	top.AddComponent(digit)
	top.AddComponent(submit)
	top.AddComponent(joyX)
	top.AddComponent(joyY)
	top.AddComponent(readings)
	top.AddComponent(led)
	top.AddComponent(lcd)
	top.AddComponent(frozen)

	top.MustAddCoupling(digit.Out, sys.Lock.InDigit)
	top.MustAddCoupling(submit.Out, sys.Lock.InSubmit)
	top.MustAddCoupling(joyX.Out, sys.Lock.InX)
	top.MustAddCoupling(joyY.Out, sys.Lock.InY)
	top.MustAddCoupling(readings.Out, sys.Thermometer.InRaw)
	top.MustAddCoupling(sys.Door.OutLED, led.In)
	top.MustAddCoupling(sys.Lock.OutLCD, lcd.In)
	top.MustAddCoupling(sys.Lock.OutFrozenLCD, frozen.In)

	return &Simulation{System: sys, LED: led, LCD: lcd, FrozenLCD: frozen}, nil
}
