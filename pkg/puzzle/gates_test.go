package puzzle

import "testing"

func TestGateSet(t *testing.T) {
	var s GateSet
	if s.Contains(GateStarting) {
		t.Error("empty set contains starting gate")
	}
	s = s.With(GateStarting).With(GateMiniBoss)
	if !s.Contains(GateStarting) || !s.Contains(GateMiniBoss) || s.Contains(GateFireSanctuary) {
		t.Errorf("set = %v after adding starting and mini-boss", s)
	}
	if !s.ContainsAll(GateSet(0).With(GateStarting)) {
		t.Error("ContainsAll(subset) = false")
	}
	if s.ContainsAll(GateSet(0).With(GateFireSanctuary)) {
		t.Error("ContainsAll(disjoint) = true")
	}
	union := s.Union(GateSet(0).With(GateFireSanctuary))
	if !union.Contains(GateFireSanctuary) || !union.Contains(GateStarting) {
		t.Errorf("union = %v", union)
	}
}

func TestGateSetString(t *testing.T) {
	if got := GateSet(0).String(); got != "none" {
		t.Errorf("empty set String() = %q, want %q", got, "none")
	}
	s := GateSet(0).With(GateStarting).With(GateEarthTemple)
	if got := s.String(); got != "starting,earth-temple" {
		t.Errorf("String() = %q, want %q", got, "starting,earth-temple")
	}
}
