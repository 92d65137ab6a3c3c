package devs

import "testing"

func TestTypedPort_AddMessage_PreservesInsertionOrder(t *testing.T) {
	// GIVEN an empty int port
	p := NewPort[int]("out")

	// WHEN three messages are added
	p.AddMessage(7)
	p.AddMessage(7)
	p.AddMessage(3)

	// THEN the bag holds them in insertion order, duplicates included
	if p.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", p.Len())
	}
	want := []int{7, 7, 3}
	for i, v := range p.Bag() {
		if v != want[i] {
			t.Errorf("Bag[%d]: got %d, want %d", i, v, want[i])
		}
	}
}

func TestTypedPort_Clear_EmptiesBag(t *testing.T) {
	// GIVEN a port with messages
	p := NewPort[string]("out")
	p.AddMessage("a")
	p.AddMessage("b")

	// WHEN Clear is called
	p.Clear()

	// THEN the port reports empty
	if !p.Empty() {
		t.Errorf("Empty after Clear: got false, want true")
	}
	if p.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", p.Len())
	}
}

func TestTypedPort_CompatibleWith_MatchesPayloadType(t *testing.T) {
	// GIVEN ports of matching and mismatching payload types
	src := NewPort[int]("src")
	dstInt := NewPort[int]("dstInt")
	dstBool := NewPort[bool]("dstBool")

	// THEN only the matching pair is compatible
	if !src.compatibleWith(dstInt) {
		t.Error("int -> int: got incompatible, want compatible")
	}
	if src.compatibleWith(dstBool) {
		t.Error("int -> bool: got compatible, want incompatible")
	}
}

func TestTypedPort_RouteTo_AccumulatesOnDestination(t *testing.T) {
	// GIVEN two sources routed to one destination
	srcA := NewPort[int]("a")
	srcB := NewPort[int]("b")
	dst := NewPort[int]("dst")
	srcA.AddMessage(1)
	srcB.AddMessage(2)
	srcB.AddMessage(3)

	// WHEN both sources route in the same instant
	srcA.routeTo(dst)
	srcB.routeTo(dst)

	// THEN the destination bag accumulates all messages
	if dst.Len() != 3 {
		t.Fatalf("dst.Len: got %d, want 3", dst.Len())
	}
}
