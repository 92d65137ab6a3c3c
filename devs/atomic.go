package devs

// Model is the capability shared by atomic and coupled models: a stable
// identifier plus the ports through which it exchanges messages. The
// coordinator and the flattening logic operate purely through this interface
// and through Atomic, never via concrete-type inspection of model state.
type Model interface {
	ID() string
	InPorts() []Port
	OutPorts() []Port
}

// Atomic is the contract every leaf state machine implements.
//
// Sigma (the value returned by TimeAdvance) is the remaining simulated time
// until the model's next internal transition; math.Inf(1) means the model
// never fires spontaneously. Every transition must leave sigma defined and
// non-negative -- the coordinator treats anything else as a fatal model
// contract violation.
type Atomic interface {
	Model

	// InternalTransition is invoked only when sigma reaches exactly 0. It
	// advances the model's own clock and logic with no external input.
	InternalTransition()

	// ExternalTransition is invoked when one or more input ports received
	// messages. elapsed is the simulated time since the model's last
	// transition of any kind; it is 0 when the model also fired internally
	// in the same instant (the confluent case, applied internal-first).
	// The model must consume every non-empty input port's bag.
	ExternalTransition(elapsed float64)

	// Output is invoked immediately before an internal transition fires,
	// never before an external-only transition. It must be a pure function
	// of state: it writes messages to output ports and mutates nothing.
	Output()

	// TimeAdvance returns sigma.
	TimeAdvance() float64
}

// StateReporter is implemented by models that expose their state to the
// trace observer side channel after each transition. Reporting is read-only
// and never feeds back into simulation state.
type StateReporter interface {
	StateString() string
}

// Component is the embeddable base for atomic models: it owns the model ID
// and the registered ports. Concrete models embed it and register their
// ports through AddInPort / AddOutPort at construction.
type Component struct {
	id  string
	in  []Port
	out []Port
}

// NewComponent creates a Component with the given stable identifier.
func NewComponent(id string) Component {
	return Component{id: id}
}

// ID returns the model identifier.
func (c *Component) ID() string { return c.id }

// InPorts returns the registered input ports in registration order.
func (c *Component) InPorts() []Port { return c.in }

// OutPorts returns the registered output ports in registration order.
func (c *Component) OutPorts() []Port { return c.out }

// AddInPort creates a typed input port on c and registers it.
func AddInPort[T any](c *Component, name string) *TypedPort[T] {
	p := NewPort[T](name)
	c.in = append(c.in, p)
	return p
}

// AddOutPort creates a typed output port on c and registers it.
func AddOutPort[T any](c *Component, name string) *TypedPort[T] {
	p := NewPort[T](name)
	c.out = append(c.out, p)
	return p
}
