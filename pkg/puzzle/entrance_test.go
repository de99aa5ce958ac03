package puzzle

import "testing"

// Every entrance maps to exactly one (room, wall) pair and back.
func TestEntranceRoundTrip(t *testing.T) {
	for e := Entrance(0); e < NumEntrances; e++ {
		got, ok := EntranceAt(e.Room(), e.Wall())
		if !ok || got != e {
			t.Errorf("EntranceAt(%v, %v) = (%v, %v), want (%v, true)", e.Room(), e.Wall(), got, ok, e)
		}
	}
}

func TestEntranceAtTotalCount(t *testing.T) {
	count := 0
	for r := Empty; r <= Sandship; r++ {
		for _, d := range []Direction{Up, Left, Down, Right} {
			if _, ok := EntranceAt(r, d); ok {
				count++
			}
		}
	}
	if count != NumEntrances {
		t.Errorf("defined (room, wall) pairs = %d, want %d", count, NumEntrances)
	}
}

func TestEmptyHasNoEntrances(t *testing.T) {
	for _, d := range []Direction{Up, Left, Down, Right} {
		if e, ok := EntranceAt(Empty, d); ok {
			t.Errorf("EntranceAt(Empty, %v) = %v, want none", d, e)
		}
	}
}

func TestControlPanels(t *testing.T) {
	want := map[Entrance]bool{
		StartRight:                true,
		LanayruMiningFacilityDown: true,
		EarthTempleDown:           true,
		MiniBossLeft:              true,
	}
	for e := Entrance(0); e < NumEntrances; e++ {
		if got := HasControlPanel(e); got != want[e] {
			t.Errorf("HasControlPanel(%v) = %v, want %v", e, got, want[e])
		}
	}
}

func TestOpensGate(t *testing.T) {
	want := map[Entrance]Gate{
		StartDown:          GateStarting,
		EarthTempleDown:    GateEarthTemple,
		MiniBossDown:       GateMiniBoss,
		FireSanctuaryRight: GateFireSanctuary,
	}
	for e := Entrance(0); e < NumEntrances; e++ {
		g, ok := OpensGate(e)
		wantGate, wantOK := want[e]
		if ok != wantOK || g != wantGate {
			t.Errorf("OpensGate(%v) = (%v, %v), want (%v, %v)", e, g, ok, wantGate, wantOK)
		}
	}
}

// Opening more gates never removes an internal link.
func TestTraverseInternalMonotonic(t *testing.T) {
	for e := Entrance(0); e < NumEntrances; e++ {
		for g1 := GateSet(0); g1 < 16; g1++ {
			for g2 := GateSet(0); g2 < 16; g2++ {
				if !g2.ContainsAll(g1) {
					continue
				}
				to1, ok1 := TraverseInternal(e, g1)
				to2, ok2 := TraverseInternal(e, g2)
				if ok1 && !ok2 {
					t.Fatalf("TraverseInternal(%v) open under %v but closed under superset %v", e, g1, g2)
				}
				if ok1 && ok2 && to1 != to2 {
					t.Fatalf("TraverseInternal(%v) = %v under %v, %v under %v", e, to1, g1, to2, g2)
				}
			}
		}
	}
}

func TestSandshipDeadEnd(t *testing.T) {
	all := GateSet(GateStarting | GateEarthTemple | GateMiniBoss | GateFireSanctuary)
	if to, ok := TraverseInternal(SandshipLeft, all); ok {
		t.Errorf("TraverseInternal(SandshipLeft, all gates) = %v, want none", to)
	}
}

func TestGatedLinks(t *testing.T) {
	tests := []struct {
		from Entrance
		gate Gate
		to   Entrance
	}{
		{StartRight, GateStarting, StartDown},
		{EarthTempleRight, GateEarthTemple, EarthTempleDown},
		{MiniBossLeft, GateMiniBoss, MiniBossDown},
		{FireSanctuaryLeft, GateFireSanctuary, FireSanctuaryRight},
	}
	for _, tt := range tests {
		if to, ok := TraverseInternal(tt.from, 0); ok {
			t.Errorf("TraverseInternal(%v, none) = %v, want closed", tt.from, to)
		}
		to, ok := TraverseInternal(tt.from, GateSet(0).With(tt.gate))
		if !ok || to != tt.to {
			t.Errorf("TraverseInternal(%v, %v) = (%v, %v), want (%v, true)", tt.from, tt.gate, to, ok, tt.to)
		}
	}
}
