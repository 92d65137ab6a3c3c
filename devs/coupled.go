package devs

import "fmt"

// coupling is a directed edge from a source port to a destination port.
// Couplings are static: built when the coupled model is constructed and
// never mutated at run time.
type coupling struct {
	src Port
	dst Port
}

// Coupled is a container model: it composes atomic and/or coupled children
// and wires their ports (and its own external ports) with directed
// couplings. A coupled model has no behavior of its own; the coordinator
// sees only the flattened atomic models and the resolved port routes.
//
// Ownership is strictly hierarchical -- a child belongs to exactly one
// parent. Cycles are allowed in the coupling graph (the elevator triad
// depends on one), never in the containment tree.
type Coupled struct {
	Component

	children  []Model
	couplings []coupling
}

// NewCoupled creates an empty coupled model with the given identifier.
func NewCoupled(id string) *Coupled {
	return &Coupled{Component: NewComponent(id)}
}

// AddComponent adds a child model. Children keep their insertion order;
// the coordinator relies on that order for deterministic scheduling.
func (c *Coupled) AddComponent(m Model) {
	c.children = append(c.children, m)
}

// AddCoupling wires src to dst. Payload compatibility is verified here, at
// configuration time: coupling two ports with different payload types is a
// construction failure, never a run-time one. Fan-out and fan-in are legal.
func (c *Coupled) AddCoupling(src, dst Port) error {
	if src == nil || dst == nil {
		return fmt.Errorf("coupled %s: coupling with nil port", c.ID())
	}
	if !src.compatibleWith(dst) {
		return fmt.Errorf("coupled %s: incompatible coupling %s (%s) -> %s (%s)",
			c.ID(), src.Name(), src.payloadName(), dst.Name(), dst.payloadName())
	}
	c.couplings = append(c.couplings, coupling{src: src, dst: dst})
	return nil
}

// MustAddCoupling is AddCoupling for static model wiring that is known
// type-correct; it panics on mismatch instead of returning an error.
func (c *Coupled) MustAddCoupling(src, dst Port) {
	if err := c.AddCoupling(src, dst); err != nil {
		panic(err)
	}
}

// atomics returns every atomic model in the containment tree rooted at m,
// depth-first in insertion order.
func atomics(m Model) []Atomic {
	switch v := m.(type) {
	case Atomic:
		return []Atomic{v}
	case *Coupled:
		var out []Atomic
		for _, child := range v.children {
			out = append(out, atomics(child)...)
		}
		return out
	default:
		panic(fmt.Sprintf("devs: model %s is neither Atomic nor *Coupled", m.ID()))
	}
}

// gatherCouplings returns every coupling edge in the containment tree.
func gatherCouplings(m Model) []coupling {
	c, ok := m.(*Coupled)
	if !ok {
		return nil
	}
	edges := append([]coupling(nil), c.couplings...)
	for _, child := range c.children {
		edges = append(edges, gatherCouplings(child)...)
	}
	return edges
}

// flattenRoutes resolves the hierarchical coupling graph into direct routes
// from atomic output ports to atomic input ports. A chain that passes
// through the external ports of nested coupled models collapses into the
// atomic endpoints, so the coordinator routes messages in one hop with zero
// additional elapsed time.
func flattenRoutes(root Model, leaves []Atomic) map[Port][]Port {
	atomicIn := make(map[Port]bool)
	for _, a := range leaves {
		for _, p := range a.InPorts() {
			atomicIn[p] = true
		}
	}

	edges := make(map[Port][]Port)
	for _, e := range gatherCouplings(root) {
		edges[e.src] = append(edges[e.src], e.dst)
	}

	// resolve follows edges from p until it reaches atomic-owned input
	// ports, walking through coupled external ports in between.
	var resolve func(p Port, seen map[Port]bool) []Port
	resolve = func(p Port, seen map[Port]bool) []Port {
		var dsts []Port
		for _, next := range edges[p] {
			if atomicIn[next] {
				dsts = append(dsts, next)
				continue
			}
			if seen[next] {
				continue
			}
			seen[next] = true
			dsts = append(dsts, resolve(next, seen)...)
		}
		return dsts
	}

	routes := make(map[Port][]Port)
	for _, a := range leaves {
		for _, p := range a.OutPorts() {
			if dsts := resolve(p, map[Port]bool{p: true}); len(dsts) > 0 {
				routes[p] = dsts
			}
		}
	}
	return routes
}
