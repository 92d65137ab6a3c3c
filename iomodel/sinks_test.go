package iomodel

import (
	"math"
	"testing"
)

func TestDigitalOutput_LatchesLevelsInArrivalOrder(t *testing.T) {
	// GIVEN a digital sink with two levels in one instant's bag
	d := NewDigitalOutput("doorLED")
	d.In.AddMessage(true)
	d.In.AddMessage(false)

	// WHEN the external transition fires
	d.ExternalTransition(0.11)

	// THEN the last value wins and the history keeps both
	if d.Level() {
		t.Error("Level: got true, want false")
	}
	got := d.History()
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("History: got %v, want [true false]", got)
	}
}

func TestDigitalOutput_IsPermanentlyPassive(t *testing.T) {
	// GIVEN a digital sink
	d := NewDigitalOutput("led")

	// THEN it never schedules an internal event
	if !math.IsInf(d.TimeAdvance(), 1) {
		t.Errorf("TimeAdvance: got %v, want +Inf", d.TimeAdvance())
	}
	d.InternalTransition()
	if !math.IsInf(d.TimeAdvance(), 1) {
		t.Errorf("TimeAdvance after internal: got %v, want +Inf", d.TimeAdvance())
	}
}

func TestLCDOutput_RecordsDrawCommands(t *testing.T) {
	// GIVEN an LCD sink
	l := NewLCDOutput("statusLCD")
	l.In.AddMessage("BSP_LCD_DrawString(0,5,DFloor:4 CFloor:1,LCD_WHITE)")

	// WHEN the external transition fires
	l.ExternalTransition(0)

	// THEN the command is the latest and only history entry
	if l.Last() != "BSP_LCD_DrawString(0,5,DFloor:4 CFloor:1,LCD_WHITE)" {
		t.Errorf("Last: got %q", l.Last())
	}
	if len(l.History()) != 1 {
		t.Errorf("History: got %d entries, want 1", len(l.History()))
	}
}

func TestPWMOutput_LatchesDuty(t *testing.T) {
	// GIVEN a PWM sink receiving a moving burst then silence
	p := NewPWMOutput("moveBuzzer")
	p.In.AddMessage(2)
	p.ExternalTransition(2.0)
	p.In.Clear()
	p.In.AddMessage(0)
	p.ExternalTransition(2.0)

	// THEN the duty ends at 0 with the burst in history
	if p.Duty() != 0 {
		t.Errorf("Duty: got %d, want 0", p.Duty())
	}
	h := p.History()
	if len(h) != 2 || h[0] != 2 || h[1] != 0 {
		t.Errorf("History: got %v, want [2 0]", h)
	}
}
