// Package elevator implements the three-component elevator control network:
// floor-request capture (Num), door interlock (Door), and floor-by-floor
// movement (Move), composed into one coupled system with a feedback cycle
// Num -> Door -> Move -> Door -> Num.
package elevator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
)

// numPeriod is Num's heartbeat: it re-emits its held floor every period,
// which is what lets Door reopen once Move reports arrival.
const numPeriod = 0.11

// quadrantMidpoint splits the joystick plane into the 2x2 floor grid.
const quadrantMidpoint = 500

// Num captures floor requests from the joystick and button. The joystick
// plane maps to floors as
//
//	 _____________
//	|      |      |
//	|  1 __|__ 2  |
//	|___|     |___|
//	|   |_____|   |
//	|  3   |   4  |
//	|______|______|
//
// and a button edge is interpreted as a floor request only while the door
// status feedback says "open"; requests while closed are ignored.
type Num struct {
	devs.Component

	InX          *devs.TypedPort[int]
	InY          *devs.TypedPort[int]
	InButton     *devs.TypedPort[bool]
	InDoorStatus *devs.TypedPort[bool]

	Out *devs.TypedPort[int]

	x, y       int
	floorNum   int
	doorClosed bool
	inputLog   string
	sigma      float64
}

// NewNum creates the floor-request capture model, holding floor 1 with the
// door open.
func NewNum(id string) *Num {
	n := &Num{
		Component: devs.NewComponent(id),
		floorNum:  1,
		sigma:     numPeriod,
	}
	n.InX = devs.AddInPort[int](&n.Component, "inX")
	n.InY = devs.AddInPort[int](&n.Component, "inY")
	n.InButton = devs.AddInPort[bool](&n.Component, "inButton")
	n.InDoorStatus = devs.AddInPort[bool](&n.Component, "inDoorStatus")
	n.Out = devs.AddOutPort[int](&n.Component, "out")
	return n
}

// quadrantFloor maps joystick coordinates to a floor. Coordinates exactly
// on the midpoint fall in no quadrant.
func quadrantFloor(x, y int) (int, bool) {
	switch {
	case x < quadrantMidpoint && y > quadrantMidpoint:
		return 1, true
	case x > quadrantMidpoint && y > quadrantMidpoint:
		return 2, true
	case x < quadrantMidpoint && y < quadrantMidpoint:
		return 3, true
	case x > quadrantMidpoint && y < quadrantMidpoint:
		return 4, true
	}
	return 0, false
}

// InternalTransition is a pure heartbeat; the captured state only changes
// on external input.
func (n *Num) InternalTransition() {
	n.sigma = numPeriod
}

// ExternalTransition consumes button edges against the coordinates held
// from previous instants, then updates coordinates and the door-status
// interlock. Button presses are evaluated before coordinate updates, so a
// press and a joystick move arriving in the same instant use the position
// the stick was in when the button went down.
func (n *Num) ExternalTransition(elapsed float64) {
	for _, pressed := range n.InButton.Bag() {
		if !pressed {
			continue
		}
		if n.doorClosed {
			n.inputLog += "DC "
			logrus.Infof("%s: request ignored, door closed", n.ID())
			continue
		}
		floor, ok := quadrantFloor(n.x, n.y)
		if !ok || floor == n.floorNum {
			continue
		}
		n.floorNum = floor
		n.inputLog += fmt.Sprintf("%d ", floor)
	}

	for _, x := range n.InX.Bag() {
		n.x = x
	}
	for _, y := range n.InY.Bag() {
		n.y = y
	}
	for _, closed := range n.InDoorStatus.Bag() {
		n.doorClosed = closed
	}
}

// Output emits the held floor. The emission is periodic, not edge-driven:
// Door relies on seeing the held floor again after Move reports arrival.
func (n *Num) Output() {
	n.Out.AddMessage(n.floorNum)
}

// TimeAdvance returns sigma.
func (n *Num) TimeAdvance() float64 { return n.sigma }

// Floor returns the currently held floor number.
func (n *Num) Floor() int { return n.floorNum }

// DoorClosed returns the last received door-status feedback.
func (n *Num) DoorClosed() bool { return n.doorClosed }

// StateString implements devs.StateReporter.
func (n *Num) StateString() string {
	return fmt.Sprintf("FloorNumberInputs: %s,xCoordinate: %d,yCoordinate: %d,elevNumDoorStatus: %v",
		n.inputLog, n.x, n.y, n.doorClosed)
}
