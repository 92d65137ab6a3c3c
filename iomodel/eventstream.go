// Package iomodel provides the boundary adapters of control-sim: file-backed
// event-stream inputs and digital/LCD/PWM output sinks. Adapters perform no
// logic beyond value translation and couple like any atomic model.
package iomodel

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/control-sim/control-sim/devs"
)

// timedValue is one parsed trace event: a value due at an absolute
// simulated time.
type timedValue[T any] struct {
	at    float64
	value T
}

// EventStream replays a plain-text event trace as port messages: one event
// per line, `<time> <value>`, whitespace-separated, emitted on the Out port
// at the encoded time. Blank lines and lines starting with '#' are ignored.
//
// A line that cannot be parsed is reported and skipped -- the simulation is
// never fed a partially-parsed message. Once the last event has been
// emitted the stream goes passive.
type EventStream[T any] struct {
	devs.Component

	Out *devs.TypedPort[T]

	events []timedValue[T]
	idx    int
	sigma  float64
}

// NewEventStream reads and parses the whole trace from r up front. parse
// converts the value field of one line; it is the only part that differs
// between payload types.
func NewEventStream[T any](id string, r io.Reader, parse func(string) (T, error)) (*EventStream[T], error) {
	es := &EventStream[T]{Component: devs.NewComponent(id)}
	es.Out = devs.AddOutPort[T](&es.Component, "out")

	scanner := bufio.NewScanner(r)
	lineNo := 0
	lastAt := 0.0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			logrus.Errorf("%s: line %d: want `<time> <value>`, got %q; skipping", id, lineNo, line)
			continue
		}
		at, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || at < 0 {
			logrus.Errorf("%s: line %d: bad event time %q; skipping", id, lineNo, fields[0])
			continue
		}
		if at < lastAt {
			logrus.Errorf("%s: line %d: event time %.4f precedes %.4f; skipping", id, lineNo, at, lastAt)
			continue
		}
		v, err := parse(fields[1])
		if err != nil {
			logrus.Errorf("%s: line %d: bad value %q: %v; skipping", id, lineNo, fields[1], err)
			continue
		}
		es.events = append(es.events, timedValue[T]{at: at, value: v})
		lastAt = at
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: reading trace: %w", id, err)
	}

	if len(es.events) == 0 {
		es.sigma = math.Inf(1)
	} else {
		es.sigma = es.events[0].at
	}
	return es, nil
}

// Output emits every event due at the current instant. Multiple events with
// the same timestamp land in the same bag, in file order.
func (es *EventStream[T]) Output() {
	at := es.events[es.idx].at
	for i := es.idx; i < len(es.events) && es.events[i].at == at; i++ {
		es.Out.AddMessage(es.events[i].value)
	}
}

// InternalTransition advances past the events just emitted and re-arms the
// timer for the next one, or goes passive at end of trace.
func (es *EventStream[T]) InternalTransition() {
	at := es.events[es.idx].at
	for es.idx < len(es.events) && es.events[es.idx].at == at {
		es.idx++
	}
	if es.idx == len(es.events) {
		es.sigma = math.Inf(1)
		return
	}
	es.sigma = es.events[es.idx].at - at
}

// ExternalTransition is never triggered: an event stream has no input ports.
func (es *EventStream[T]) ExternalTransition(elapsed float64) {}

// TimeAdvance returns the time until the next event in the trace.
func (es *EventStream[T]) TimeAdvance() float64 { return es.sigma }

// Remaining returns how many events have not been emitted yet.
func (es *EventStream[T]) Remaining() int { return len(es.events) - es.idx }

// StateString implements devs.StateReporter.
func (es *EventStream[T]) StateString() string {
	return fmt.Sprintf("Emitted: %d,Pending: %d", es.idx, len(es.events)-es.idx)
}

// NewBoolStream builds an EventStream of bool events (`0/1/true/false`).
func NewBoolStream(id string, r io.Reader) (*EventStream[bool], error) {
	return NewEventStream(id, r, strconv.ParseBool)
}

// NewIntStream builds an EventStream of int events.
func NewIntStream(id string, r io.Reader) (*EventStream[int], error) {
	return NewEventStream(id, r, strconv.Atoi)
}

// NewFloatStream builds an EventStream of float64 events.
func NewFloatStream(id string, r io.Reader) (*EventStream[float64], error) {
	return NewEventStream(id, r, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}
