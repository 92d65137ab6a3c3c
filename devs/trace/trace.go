package trace

import (
	"github.com/google/uuid"

	"github.com/control-sim/control-sim/devs"
)

// StateTrace is an in-memory devs.Observer: it collects a StateRecord for
// every transition of every model in the run. Each trace carries a unique
// run ID so traces from multiple runs can be told apart once written out.
type StateTrace struct {
	RunID   string
	Records []StateRecord
}

// NewStateTrace creates a StateTrace ready for recording.
func NewStateTrace() *StateTrace {
	return &StateTrace{
		RunID:   uuid.NewString(),
		Records: make([]StateRecord, 0),
	}
}

// OnTransition implements devs.Observer.
func (st *StateTrace) OnTransition(clock float64, modelID string, kind devs.TransitionKind, state string) {
	st.Records = append(st.Records, StateRecord{
		Clock:   clock,
		ModelID: modelID,
		Kind:    string(kind),
		State:   state,
	})
}

// ForModel returns the records for a single model, in firing order.
func (st *StateTrace) ForModel(modelID string) []StateRecord {
	var out []StateRecord
	for _, r := range st.Records {
		if r.ModelID == modelID {
			out = append(out, r)
		}
	}
	return out
}

var _ devs.Observer = (*StateTrace)(nil)
