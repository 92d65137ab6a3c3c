// Package garage implements the garage-door opener: a password lock driven
// by joystick quadrant digits and a door that toggles on each successful
// authorization.
package garage

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
)

// lockPeriod is the lock's self-report interval; an authorization pulse is
// withdrawn again on the internal transition that follows it.
const lockPeriod = 0.1

// password accepted by the lock.
const password = "1234"

// frozenThreshold is the Celsius reading at or below which the door
// mechanism is reported frozen.
const frozenThreshold = 24.0

// Lock collects password digits from joystick quadrants. The quadrant
// numbering differs from the elevator panel:
//
//	 _____________
//	|      |      |
//	|  2 __|__ 1  |
//	|___|     |___|
//	|   |_____|   |
//	|  3   |   4  |
//	|______|______|
//
// with a dead zone between 400 and 600 on both axes. The top button enters
// the digit under the stick; the bottom button submits the attempt. A
// correct attempt emits a single authorization pulse.
type Lock struct {
	devs.Component

	InX           *devs.TypedPort[int]
	InY           *devs.TypedPort[int]
	InDigit       *devs.TypedPort[bool]
	InSubmit      *devs.TypedPort[bool]
	InTemperature *devs.TypedPort[float64]

	Out          *devs.TypedPort[bool]
	OutLCD       *devs.TypedPort[string]
	OutFrozenLCD *devs.TypedPort[string]

	x, y        int
	entered     string
	authorized  bool
	inputNumber int
	lcd         string
	frozenLCD   string
	temperature float64
}

// NewLock creates the password lock.
func NewLock(id string) *Lock {
	l := &Lock{Component: devs.NewComponent(id)}
	l.InX = devs.AddInPort[int](&l.Component, "inX")
	l.InY = devs.AddInPort[int](&l.Component, "inY")
	l.InDigit = devs.AddInPort[bool](&l.Component, "inDigit")
	l.InSubmit = devs.AddInPort[bool](&l.Component, "inSubmit")
	l.InTemperature = devs.AddInPort[float64](&l.Component, "inTemperature")
	l.Out = devs.AddOutPort[bool](&l.Component, "out")
	l.OutLCD = devs.AddOutPort[string](&l.Component, "outLCD")
	l.OutFrozenLCD = devs.AddOutPort[string](&l.Component, "outFrozenLCD")
	l.frozenLCD = "BSP_LCD_DrawString(0,7,.,LCD_WHITE)"
	return l
}

// Banner returns the static draw commands shown once at startup.
func (l *Lock) Banner() []string {
	return []string{
		"BSP_LCD_DrawString(0,0,Garage Door Opener 3,LCD_WHITE)",
		"BSP_LCD_DrawString(0,1,TLeft=2 TRight=1,LCD_WHITE)",
		"BSP_LCD_DrawString(0,2,BLeft=3 BRight=4,LCD_WHITE)",
		"BSP_LCD_DrawString(0,3,TopInput BottomSubmit,LCD_WHITE)",
	}
}

// lockDigit maps joystick coordinates to a password digit; the dead zone
// maps to none.
func lockDigit(x, y int) (string, bool) {
	switch {
	case x > 600 && y > 600:
		return "1", true
	case x < 400 && y > 600:
		return "2", true
	case x < 400 && y < 400:
		return "3", true
	case x > 600 && y < 400:
		return "4", true
	}
	return "", false
}

// InternalTransition withdraws an authorization pulse one period after it
// was granted.
func (l *Lock) InternalTransition() {
	if l.authorized {
		l.authorized = false
	}
}

// ExternalTransition handles digit entry, submission, coordinate updates,
// and the temperature feedback for the frozen-door display. Button edges
// are evaluated against the coordinates held from previous instants.
func (l *Lock) ExternalTransition(elapsed float64) {
	for _, pressed := range l.InDigit.Bag() {
		if !pressed {
			continue
		}
		digit, ok := lockDigit(l.x, l.y)
		if !ok {
			continue
		}
		l.entered += digit
		l.lcd = fmt.Sprintf("BSP_LCD_DrawString(%d,4,%s,LCD_WHITE)", l.inputNumber, digit)
		l.inputNumber++
	}

	for _, pressed := range l.InSubmit.Bag() {
		if !pressed {
			continue
		}
		if l.entered == password {
			l.authorized = true
		} else {
			logrus.Infof("%s: incorrect password attempt", l.ID())
		}
		l.entered = ""
		l.lcd = "BSP_LCD_DrawString(0,4,       ,LCD_WHITE)"
		l.inputNumber = 0
	}

	for _, x := range l.InX.Bag() {
		l.x = x
	}
	for _, y := range l.InY.Bag() {
		l.y = y
	}

	for _, c := range l.InTemperature.Bag() {
		l.temperature = c
		if c <= frozenThreshold {
			l.frozenLCD = "BSP_LCD_DrawString(0,7,FROZEN,LCD_WHITE)"
		} else {
			l.frozenLCD = "BSP_LCD_DrawString(0,7,WORKING,LCD_WHITE)"
		}
	}
}

// Output emits the authorization state and both LCD lines.
func (l *Lock) Output() {
	l.Out.AddMessage(l.authorized)
	l.OutLCD.AddMessage(l.lcd)
	l.OutFrozenLCD.AddMessage(l.frozenLCD)
}

// TimeAdvance returns the self-report interval.
func (l *Lock) TimeAdvance() float64 { return lockPeriod }

// Authorized returns whether an authorization pulse is pending.
func (l *Lock) Authorized() bool { return l.authorized }

// StateString implements devs.StateReporter.
func (l *Lock) StateString() string {
	return fmt.Sprintf("PasswordEntered: %s,Authorized: %v,xCoordinate: %d,yCoordinate: %d",
		l.entered, l.authorized, l.x, l.y)
}
