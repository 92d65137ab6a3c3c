package iomodel

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventStream_ParsesTraceWithCommentsAndBlanks(t *testing.T) {
	// GIVEN a trace with comments, blank lines, and three events
	trace := `# joystick x channel
0.5 300

1.0 700
# recentering
2.5 512
`

	// WHEN the stream is built
	es, err := NewIntStream("joystickXInput", strings.NewReader(trace))
	require.NoError(t, err)

	// THEN three events are pending and the first is due at 0.5
	require.Equal(t, 3, es.Remaining())
	require.Equal(t, 0.5, es.TimeAdvance())
}

func TestEventStream_SkipsMalformedLines(t *testing.T) {
	// GIVEN a trace with a missing value, a bad time, an out-of-order
	// event, and one valid event
	trace := `0.5
abc 1
2.0 42
1.0 7
`

	// WHEN the stream is built
	es, err := NewIntStream("input", strings.NewReader(trace))
	require.NoError(t, err)

	// THEN only the valid event survives
	require.Equal(t, 1, es.Remaining())
	require.Equal(t, 2.0, es.TimeAdvance())
}

func TestEventStream_EmptyTrace_IsPassive(t *testing.T) {
	// GIVEN an empty trace
	es, err := NewBoolStream("buttonInput", strings.NewReader(""))
	require.NoError(t, err)

	// THEN the stream never fires
	require.True(t, math.IsInf(es.TimeAdvance(), 1))
	require.Equal(t, 0, es.Remaining())
}

func TestEventStream_EmitsSameInstantEventsInOneBag(t *testing.T) {
	// GIVEN two events with the same timestamp and one later event
	trace := "1.0 3\n1.0 4\n2.0 5\n"
	es, err := NewIntStream("input", strings.NewReader(trace))
	require.NoError(t, err)

	// WHEN the first instant fires
	es.Output()

	// THEN both same-instant values land in the bag in file order
	require.Equal(t, []int{3, 4}, es.Out.Bag())

	// WHEN the internal transition advances past them
	es.InternalTransition()

	// THEN the next event is one simulated second away
	require.Equal(t, 1, es.Remaining())
	require.Equal(t, 1.0, es.TimeAdvance())
}

func TestEventStream_GoesPassiveAfterLastEvent(t *testing.T) {
	// GIVEN a single-event trace
	es, err := NewBoolStream("buttonInput", strings.NewReader("0.05 1\n"))
	require.NoError(t, err)

	// WHEN the event is emitted and consumed
	es.Output()
	es.InternalTransition()

	// THEN the stream is passive
	require.True(t, math.IsInf(es.TimeAdvance(), 1))
	require.Equal(t, 0, es.Remaining())
	require.Equal(t, []bool{true}, es.Out.Bag())
}

func TestEventStream_BoolValues_AcceptDigitsAndWords(t *testing.T) {
	// GIVEN bool events in both spellings
	es, err := NewBoolStream("buttonInput", strings.NewReader("0.1 1\n0.2 false\n"))
	require.NoError(t, err)
	require.Equal(t, 2, es.Remaining())
}
