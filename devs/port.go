package devs

import "fmt"

// Port is the type-erased view of a typed port, used for coupling storage
// and routing. Concrete ports are created with NewPort[T]; payload
// compatibility between coupled ports is checked when the coupling is added,
// never at run time.
type Port interface {
	// Name returns the port name, unique within its owning model.
	Name() string
	// Empty reports whether the port's bag holds no messages.
	Empty() bool
	// Len returns the number of messages in the bag.
	Len() int
	// Clear drops all messages. The coordinator calls this at the end of
	// every simulated instant; models never clear ports themselves.
	Clear()

	payloadName() string
	compatibleWith(dst Port) bool
	routeTo(dst Port)
}

// TypedPort carries an ordered bag of T messages produced or consumed within
// a single simulated instant. Messages have no identity beyond their value;
// insertion order within the bag is preserved, and multiple messages on one
// port in one instant are legal.
type TypedPort[T any] struct {
	name string
	bag  []T
}

// NewPort creates an empty typed port with the given name.
func NewPort[T any](name string) *TypedPort[T] {
	return &TypedPort[T]{name: name}
}

// Name returns the port name.
func (p *TypedPort[T]) Name() string { return p.name }

// Empty reports whether the bag holds no messages.
func (p *TypedPort[T]) Empty() bool { return len(p.bag) == 0 }

// Len returns the number of messages in the bag.
func (p *TypedPort[T]) Len() int { return len(p.bag) }

// Clear drops all messages from the bag.
func (p *TypedPort[T]) Clear() { p.bag = p.bag[:0] }

// AddMessage appends a message to the bag. Models call this from Output;
// the coordinator calls it indirectly when routing along couplings.
func (p *TypedPort[T]) AddMessage(v T) { p.bag = append(p.bag, v) }

// Bag returns the messages that arrived in the current instant, in insertion
// order. The returned slice is the port's internal storage -- callers may
// iterate over it but MUST NOT append to or reslice it.
func (p *TypedPort[T]) Bag() []T { return p.bag }

func (p *TypedPort[T]) payloadName() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

func (p *TypedPort[T]) compatibleWith(dst Port) bool {
	_, ok := dst.(*TypedPort[T])
	return ok
}

// routeTo accumulates this port's bag onto dst. Destination bags accumulate
// across all sources routed in one instant; routing never overwrites.
func (p *TypedPort[T]) routeTo(dst Port) {
	d := dst.(*TypedPort[T])
	d.bag = append(d.bag, p.bag...)
}
