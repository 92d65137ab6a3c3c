// Package trace provides state-trace recording for simulation runs.
// This package stores pure data types plus sinks; it never feeds anything
// back into the devs engine.
package trace

// StateRecord captures one model transition: the simulated time it fired,
// which model transitioned, whether the trigger was internal or external,
// and the model's self-reported state string afterwards.
type StateRecord struct {
	Clock   float64
	ModelID string
	Kind    string
	State   string
}
