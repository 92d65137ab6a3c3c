package elevator

import (
	"io"

	"github.com/control-sim/control-sim/devs"
	"github.com/control-sim/control-sim/iomodel"
)

// System is the coupled control network without boundary adapters: the
// triad plus its internal couplings, including the two feedback edges that
// close the request/interlock/movement cycle.
type System struct {
	Top  *devs.Coupled
	Num  *Num
	Door *Door
	Move *Move
}

// NewSystem builds the control network.
func NewSystem(id string) *System {
	num := NewNum("elevatorNum")
	door := NewDoor("elevatorDoor")
	move := NewMove("elevatorMove")

	top := devs.NewCoupled(id)
	top.AddComponent(num)
	top.AddComponent(door)
	top.AddComponent(move)

	// Request path and its two feedback edges.
	top.MustAddCoupling(num.Out, door.InRequestedFloor)
	top.MustAddCoupling(door.OutDoorStatus, num.InDoorStatus)
	top.MustAddCoupling(door.OutFloorToMove, move.InTargetFloor)
	top.MustAddCoupling(move.OutCurrentFloor, door.InCurrentFloor)

	return &System{Top: top, Num: num, Door: door, Move: move}
}

// SimulationInputs are the trace sources for an offline run, one per
// physical input of the control panel.
type SimulationInputs struct {
	Button    io.Reader
	JoystickX io.Reader
	JoystickY io.Reader
}

// Simulation is the full offline model: the control network coupled to
// event-stream inputs and LED/LCD/buzzer sinks.
type Simulation struct {
	*System

	LED    *iomodel.DigitalOutput
	LCD    *iomodel.LCDOutput
	Buzzer *iomodel.PWMOutput
}

// NewSimulation wires the control network to trace-driven inputs and
// recording output sinks, mirroring the hardware wiring of the embedded
// build (button and joystick in; door LED, status LCD, movement buzzer
// out).
func NewSimulation(id string, in SimulationInputs) (*Simulation, error) {
	sys := NewSystem(id)

	button, err := iomodel.NewBoolStream("buttonInput", in.Button)
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

	led := iomodel.NewDigitalOutput("doorLED")
	lcd := iomodel.NewLCDOutput("statusLCD")
	buzzer := iomodel.NewPWMOutput("moveBuzzer")

	top := sys.Top
	top.AddComponent(button)
	top.AddComponent(joyX)
	top.AddComponent(joyY)
	top.AddComponent(led)
	top.AddComponent(lcd)
	top.AddComponent(buzzer)

	top.MustAddCoupling(button.Out, sys.Num.InButton)
	top.MustAddCoupling(joyX.Out, sys.Num.InX)
	top.MustAddCoupling(joyY.Out, sys.Num.InY)
	top.MustAddCoupling(sys.Door.OutDoorStatus, led.In)
	top.MustAddCoupling(sys.Move.OutLCD, lcd.In)
	top.MustAddCoupling(sys.Move.OutBuzzer, buzzer.In)

	return &Simulation{System: sys, LED: led, LCD: lcd, Buzzer: buzzer}, nil
}
