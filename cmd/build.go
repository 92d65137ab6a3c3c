package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
	"github.com/control-sim/control-sim/models/elevator"
	"github.com/control-sim/control-sim/models/garage"
	"github.com/control-sim/control-sim/models/temperature"
	"github.com/control-sim/control-sim/models/trafficlight"
)

// builtSystem is a top model ready to hand to the root coordinator, plus
// the static LCD banner its controller shows at startup.
type builtSystem struct {
	top    devs.Model
	banner []string
}

// traceFiles opens the scenario's input trace files and tracks them for
// closing after the run. A stream the scenario does not provide becomes an
// empty trace: the corresponding input simply never fires.
type traceFiles struct {
	inputs  map[string]string
	closers []io.Closer
}

func (tf *traceFiles) open(name string) (io.Reader, error) {
	path, ok := tf.inputs[name]
	if !ok {
		logrus.Warnf("no %q trace provided, input stays silent", name)
		return strings.NewReader(""), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q trace: %w", name, err)
	}
	tf.closers = append(tf.closers, f)
	return f, nil
}

func (tf *traceFiles) close() {
	for _, c := range tf.closers {
		c.Close()
	}
}

// buildSystem assembles the scenario's control system with its trace-driven
// inputs and recording output sinks.
func buildSystem(sc *Scenario) (*builtSystem, func(), error) {
	tf := &traceFiles{inputs: sc.Inputs}

	fail := func(err error) (*builtSystem, func(), error) {
		tf.close()
		return nil, nil, err
	}

	switch sc.System {
	case "elevator":
		button, err := tf.open("button")
		if err != nil {
			return fail(err)
		}
		joyX, err := tf.open("joystick_x")
		if err != nil {
			return fail(err)
		}
		joyY, err := tf.open("joystick_y")
		if err != nil {
			return fail(err)
		}
		sim, err := elevator.NewSimulation("elevatorSystem", elevator.SimulationInputs{
			Button:    button,
			JoystickX: joyX,
			JoystickY: joyY,
		})
		if err != nil {
			return fail(err)
		}
		return &builtSystem{top: sim.Top, banner: sim.Move.Banner()}, tf.close, nil

	case "garage":
		digit, err := tf.open("digit")
		if err != nil {
			return fail(err)
		}
		submit, err := tf.open("submit")
		if err != nil {
			return fail(err)
		}
		joyX, err := tf.open("joystick_x")
		if err != nil {
			return fail(err)
		}
		joyY, err := tf.open("joystick_y")
		if err != nil {
			return fail(err)
		}
		readings, err := tf.open("temperature")
		if err != nil {
			return fail(err)
		}
		sim, err := garage.NewSimulation("garageSystem", garage.SimulationInputs{
			Digit:       digit,
			Submit:      submit,
			JoystickX:   joyX,
			JoystickY:   joyY,
			RawReadings: readings,
		})
		if err != nil {
			return fail(err)
		}
		return &builtSystem{top: sim.Top, banner: sim.Lock.Banner()}, tf.close, nil

	case "temperature":
		readings, err := tf.open("readings")
		if err != nil {
			return fail(err)
		}
		sim, err := temperature.NewSimulation("temperatureSystem", temperature.SimulationInputs{
			RawReadings: readings,
		})
		if err != nil {
			return fail(err)
		}
		return &builtSystem{top: sim.Top}, tf.close, nil

	case "trafficlight":
		sim := trafficlight.NewSimulation("trafficlightSystem")
		return &builtSystem{top: sim.Top, banner: sim.Light.Banner()}, tf.close, nil
	}

	return fail(fmt.Errorf("unknown system %q", sc.System))
}
