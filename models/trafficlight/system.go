package trafficlight

import (
	"github.com/control-sim/control-sim/devs"
	"github.com/control-sim/control-sim/iomodel"
)

// System is the traffic light coupled model. There are no trace inputs;
// the light runs on its own clock.
type System struct {
	Top   *devs.Coupled
	Light *TrafficLight
}

// NewSystem builds the light on its own, without output sinks.
func NewSystem(id string) *System {
	light := NewTrafficLight("trafficLight")
	top := devs.NewCoupled(id)
	top.AddComponent(light)
	return &System{Top: top, Light: light}
}

// Simulation couples the light to its two LED sinks.
type Simulation struct {
	*System

	RedLED   *iomodel.DigitalOutput
	GreenLED *iomodel.DigitalOutput
}

// NewSimulation wires the light for trace-driven (or real-time) execution.
func NewSimulation(id string) *Simulation {
	sys := NewSystem(id)

	red := iomodel.NewDigitalOutput("redLED")
	green := iomodel.NewDigitalOutput("greenLED")

	top := sys.Top
	top.AddComponent(red)
	top.AddComponent(green)
	top.MustAddCoupling(sys.Light.OutRed, red.In)
	top.MustAddCoupling(sys.Light.OutGreen, green.In)

	return &Simulation{System: sys, RedLED: red, GreenLED: green}
}
