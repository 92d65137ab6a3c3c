package elevator

import (
	"fmt"
	"math"

	"github.com/control-sim/control-sim/devs"
)

// doorPeriod is Door's self-report interval while the door is open.
const doorPeriod = 0.11

// Door is the interlock between request capture and movement. A requested
// floor equal to the floor the car is on reopens the door; any other
// request closes it and is forwarded to Move as the travel target. The
// closed/open status feeds back to Num (and an LED) so requests are locked
// out while the car is moving.
type Door struct {
	devs.Component

	InRequestedFloor *devs.TypedPort[int]
	InCurrentFloor   *devs.TypedPort[int]

	OutDoorStatus  *devs.TypedPort[bool]
	OutFloorToMove *devs.TypedPort[int]

	floorNum       int
	floorNumToMove int
	closed         bool
	sigma          float64
}

// NewDoor creates the interlock model, open at floor 1.
func NewDoor(id string) *Door {
	d := &Door{
		Component:      devs.NewComponent(id),
		floorNum:       1,
		floorNumToMove: 1,
		sigma:          doorPeriod,
	}
	d.InRequestedFloor = devs.AddInPort[int](&d.Component, "inRequestedFloor")
	d.InCurrentFloor = devs.AddInPort[int](&d.Component, "inCurrentFloor")
	d.OutDoorStatus = devs.AddOutPort[bool](&d.Component, "outDoorStatus")
	d.OutFloorToMove = devs.AddOutPort[int](&d.Component, "outFloorToMove")
	return d
}

// InternalTransition drives only the idle timer, never the interlock
// logic: closed parks the timer at +Inf, open re-arms the periodic
// self-report. The asymmetry (the close branch of ExternalTransition does
// not touch sigma, so one last report fires before the door goes idle) is
// deliberate and matches the reference controller.
func (d *Door) InternalTransition() {
	if d.closed {
		d.sigma = math.Inf(1)
	} else {
		d.sigma = doorPeriod
	}
}

// ExternalTransition applies requested floors against the held car floor,
// then latches the car-floor feedback from Move.
func (d *Door) ExternalTransition(elapsed float64) {
	for _, requested := range d.InRequestedFloor.Bag() {
		if requested == d.floorNum {
			// Car is already there: (re)open. Identical repeats are
			// no-ops on the interlock state.
			d.closed = false
			d.sigma = doorPeriod
		} else {
			d.closed = true
			d.floorNumToMove = requested
		}
	}
	for _, floor := range d.InCurrentFloor.Bag() {
		d.floorNum = floor
	}
}

// Output emits the interlock status and the travel target together.
func (d *Door) Output() {
	d.OutDoorStatus.AddMessage(d.closed)
	d.OutFloorToMove.AddMessage(d.floorNumToMove)
}

// TimeAdvance returns sigma.
func (d *Door) TimeAdvance() float64 { return d.sigma }

// Closed returns the interlock status.
func (d *Door) Closed() bool { return d.closed }

// Floor returns the last car floor reported by Move.
func (d *Door) Floor() int { return d.floorNum }

// FloorToMove returns the held travel target.
func (d *Door) FloorToMove() int { return d.floorNumToMove }

// StateString implements devs.StateReporter.
func (d *Door) StateString() string {
	return fmt.Sprintf("DoorLight: %v,DoorFloorNum: %d,DoorFloorNumToMove: %d",
		d.closed, d.floorNum, d.floorNumToMove)
}
