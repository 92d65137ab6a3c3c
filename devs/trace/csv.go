package trace

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/control-sim/control-sim/devs"
)

// CSVWriter is a devs.Observer that streams one CSV row per transition to
// an underlying writer: time, model, kind, state. It is the machine-readable
// sibling of StateTrace for long runs where buffering every record is
// wasteful.
type CSVWriter struct {
	w   *csv.Writer
	err error
}

// NewCSVWriter wraps w and writes the header row immediately.
func NewCSVWriter(w io.Writer) *CSVWriter {
	cw := &CSVWriter{w: csv.NewWriter(w)}
	cw.err = cw.w.Write([]string{"time", "model", "kind", "state"})
	return cw
}

// OnTransition implements devs.Observer.
func (cw *CSVWriter) OnTransition(clock float64, modelID string, kind devs.TransitionKind, state string) {
	if cw.err != nil {
		return
	}
	cw.err = cw.w.Write([]string{
		strconv.FormatFloat(clock, 'f', 4, 64),
		modelID,
		string(kind),
		state,
	})
}

// Flush writes any buffered rows and returns the first error encountered
// during writing, if any.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	if cw.err != nil {
		return cw.err
	}
	return cw.w.Error()
}

var _ devs.Observer = (*CSVWriter)(nil)
