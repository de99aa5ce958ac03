package puzzle

import "testing"

func TestMoveOperators(t *testing.T) {
	// FS  BOS ET
	// AC  SSH LMF
	// --  STR SV
	g := mustParse(t, "FS,BOS,ET,AC,SSH,LMF,--,STR,SV")
	pos := position{tile: 7, facing: Right}

	tests := []struct {
		name string
		op   int
		ok   bool
		from Tile // tile whose room slides into the empty tile
	}{
		{"move up into 6", 4, true, 3},
		{"move left off-grid", 5, false, 0},
		{"move down off-grid", 6, false, 0},
		{"move right is player tile", 7, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, nextPos, ok := applyOperator(tt.op, g, pos, 0)
			if ok != tt.ok {
				t.Fatalf("applyOperator(%d) ok = %v, want %v", tt.op, ok, tt.ok)
			}
			if !ok {
				return
			}
			if nextPos != pos {
				t.Errorf("move changed position to %v", nextPos)
			}
			if next[6] != g[tt.from] || next[tt.from] != Empty {
				t.Errorf("move result = %v", next)
			}
			if g[6] != Empty {
				t.Errorf("move mutated input grid: %v", g)
			}
		})
	}
}

func TestReachOperator(t *testing.T) {
	g := mustParse(t, "FS,BOS,ET,AC,SSH,LMF,--,STR,SV")
	pos := position{tile: 7, facing: Right}

	// Lanayru's panel is reachable through the stepped walk; the player
	// warps to its tile facing the panel entrance's wall.
	next, nextPos, ok := applyOperator(1, g, pos, 0)
	if !ok {
		t.Fatal("reach(lanayru-mining-facility) failed")
	}
	if next != g {
		t.Errorf("reach changed the grid: %v", next)
	}
	if nextPos != (position{tile: 5, facing: Down}) {
		t.Errorf("reach position = %v, want (5, down)", nextPos)
	}

	// The mini-boss panel is not on any walk from the start position.
	if _, _, ok := applyOperator(3, g, pos, 0); ok {
		t.Error("reach(mini-boss) succeeded, want failure")
	}
}
