package elevator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
)

// moveQuantum is the simulated time to travel one floor.
const moveQuantum = 2.0

// movingBuzzerDuty is the PWM duty applied while the car is between its
// current floor and the travel target.
const movingBuzzerDuty = 2

// Move travels floor by floor toward the target it received from Door:
// exactly one floor per quantum, buzzer active the whole way, silent on
// arrival. It is the only model in the network whose internal transition
// performs multi-step work purely on its own clock; once given a target it
// keeps firing every quantum until the car arrives, independent of further
// input.
type Move struct {
	devs.Component

	InTargetFloor *devs.TypedPort[int]

	OutCurrentFloor *devs.TypedPort[int]
	OutBuzzer       *devs.TypedPort[int]
	OutLCD          *devs.TypedPort[string]

	floorNum    int
	floorToMove int
	buzzerDuty  int
	lcd         string
}

// NewMove creates the movement model, idle at floor 1.
func NewMove(id string) *Move {
	m := &Move{
		Component:   devs.NewComponent(id),
		floorNum:    1,
		floorToMove: 1,
	}
	m.InTargetFloor = devs.AddInPort[int](&m.Component, "inTargetFloor")
	m.OutCurrentFloor = devs.AddOutPort[int](&m.Component, "outCurrentFloor")
	m.OutBuzzer = devs.AddOutPort[int](&m.Component, "outBuzzer")
	m.OutLCD = devs.AddOutPort[string](&m.Component, "outLCD")
	m.lcd = m.drawFloors()
	return m
}

// Banner returns the static draw commands shown once at startup, before
// any transition fires.
func (m *Move) Banner() []string {
	return []string{
		"BSP_LCD_DrawString(0,0,Elevator V1.30,LCD_WHITE)",
		"BSP_LCD_DrawString(0,1,TL=1 TR=2,LCD_WHITE)",
		"BSP_LCD_DrawString(0,2,BL=3 BR=4,LCD_WHITE)",
		"BSP_LCD_DrawString(0,3,TopButtonInput,LCD_WHITE)",
		m.drawFloors(),
	}
}

func (m *Move) drawFloors() string {
	return fmt.Sprintf("BSP_LCD_DrawString(0,5,DFloor:%d CFloor:%d,LCD_WHITE)", m.floorToMove, m.floorNum)
}

// InternalTransition advances the car one floor toward the target and sets
// the buzzer accordingly.
func (m *Move) InternalTransition() {
	switch {
	case m.floorNum < m.floorToMove:
		m.buzzerDuty = movingBuzzerDuty
		m.floorNum++
		m.lcd = m.drawFloors()
	case m.floorNum > m.floorToMove:
		m.buzzerDuty = movingBuzzerDuty
		m.floorNum--
		m.lcd = m.drawFloors()
	default:
		m.buzzerDuty = 0
	}
}

// ExternalTransition latches a new travel target.
func (m *Move) ExternalTransition(elapsed float64) {
	for _, target := range m.InTargetFloor.Bag() {
		if target != m.floorToMove {
			m.floorToMove = target
			m.lcd = m.drawFloors()
			logrus.Debugf("%s: new target floor %d", m.ID(), target)
		}
	}
}

// Output emits the car floor (closing the feedback loop to Door), the
// buzzer duty, and the LCD status line.
func (m *Move) Output() {
	m.OutCurrentFloor.AddMessage(m.floorNum)
	m.OutBuzzer.AddMessage(m.buzzerDuty)
	m.OutLCD.AddMessage(m.lcd)
}

// TimeAdvance returns the fixed travel quantum.
func (m *Move) TimeAdvance() float64 { return moveQuantum }

// Floor returns the car's current floor.
func (m *Move) Floor() int { return m.floorNum }

// FloorToMove returns the travel target.
func (m *Move) FloorToMove() int { return m.floorToMove }

// BuzzerDuty returns the current buzzer duty cycle.
func (m *Move) BuzzerDuty() int { return m.buzzerDuty }

// StateString implements devs.StateReporter.
func (m *Move) StateString() string {
	return fmt.Sprintf("MoveFloorNum: %d,MoveFloorToMove: %d,MoveBuzzer: %d",
		m.floorNum, m.floorToMove, m.buzzerDuty)
}
