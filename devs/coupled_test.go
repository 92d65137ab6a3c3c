package devs

import (
	"strings"
	"testing"
)

func TestCoupled_AddCoupling_RejectsPayloadMismatch(t *testing.T) {
	// GIVEN an int output and a bool input
	top := NewCoupled("top")
	src := NewPort[int]("src")
	dst := NewPort[bool]("dst")

	// WHEN the coupling is added
	err := top.AddCoupling(src, dst)

	// THEN configuration fails with both payload types named
	if err == nil {
		t.Fatal("AddCoupling: got nil error for int -> bool coupling")
	}
	if !strings.Contains(err.Error(), "int") || !strings.Contains(err.Error(), "bool") {
		t.Errorf("error %q does not name both payload types", err)
	}
}

func TestCoupled_AddCoupling_RejectsNilPort(t *testing.T) {
	// GIVEN a coupled model
	top := NewCoupled("top")

	// WHEN a coupling with a nil endpoint is added
	err := top.AddCoupling(nil, NewPort[int]("dst"))

	// THEN configuration fails
	if err == nil {
		t.Fatal("AddCoupling: got nil error for nil source port")
	}
}

func TestCoupled_MustAddCoupling_PanicsOnMismatch(t *testing.T) {
	// GIVEN mismatched ports
	top := NewCoupled("top")
	defer func() {
		if recover() == nil {
			t.Error("MustAddCoupling: expected panic on payload mismatch")
		}
	}()

	// WHEN MustAddCoupling wires them THEN it panics
	top.MustAddCoupling(NewPort[int]("src"), NewPort[string]("dst"))
}

func TestFlattenRoutes_DirectCoupling(t *testing.T) {
	// GIVEN two atomics wired inside one coupled model
	tick := newTicker("tick", 1.0)
	col := newCollector("col")
	top := NewCoupled("top")
	top.AddComponent(tick)
	top.AddComponent(col)
	top.MustAddCoupling(tick.Out, col.In)

	// WHEN the tree is flattened
	routes := flattenRoutes(top, atomics(top))

	// THEN the source routes straight to the atomic input
	dsts := routes[Port(tick.Out)]
	if len(dsts) != 1 || dsts[0] != Port(col.In) {
		t.Fatalf("routes[tick.Out]: got %v, want [col.In]", dsts)
	}
}

func TestFlattenRoutes_CollapsesNestedCoupledPorts(t *testing.T) {
	// GIVEN a chain that passes through the external ports of a nested
	// coupled model: tick -> inner.in -> col, col inside inner
	tick := newTicker("tick", 1.0)
	col := newCollector("col")

	inner := NewCoupled("inner")
	innerIn := AddInPort[int](&inner.Component, "in")
	inner.AddComponent(col)
	inner.MustAddCoupling(innerIn, col.In)

	top := NewCoupled("top")
	top.AddComponent(tick)
	top.AddComponent(inner)
	top.MustAddCoupling(tick.Out, innerIn)

	// WHEN the tree is flattened
	leaves := atomics(top)
	routes := flattenRoutes(top, leaves)

	// THEN the chain collapses to a single atomic-to-atomic hop
	if len(leaves) != 2 {
		t.Fatalf("atomics: got %d leaves, want 2", len(leaves))
	}
	dsts := routes[Port(tick.Out)]
	if len(dsts) != 1 || dsts[0] != Port(col.In) {
		t.Fatalf("routes[tick.Out]: got %v, want [col.In]", dsts)
	}
}

func TestFlattenRoutes_FanOut(t *testing.T) {
	// GIVEN one source coupled to two sinks
	tick := newTicker("tick", 1.0)
	colA := newCollector("colA")
	colB := newCollector("colB")
	top := NewCoupled("top")
	top.AddComponent(tick)
	top.AddComponent(colA)
	top.AddComponent(colB)
	top.MustAddCoupling(tick.Out, colA.In)
	top.MustAddCoupling(tick.Out, colB.In)

	// WHEN the tree is flattened
	routes := flattenRoutes(top, atomics(top))

	// THEN both destinations are reached from the one source
	if len(routes[Port(tick.Out)]) != 2 {
		t.Fatalf("routes[tick.Out]: got %v, want 2 destinations", routes[Port(tick.Out)])
	}
}
