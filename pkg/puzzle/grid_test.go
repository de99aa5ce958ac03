package puzzle

import (
	"errors"
	"math/rand"
	"testing"
)

func TestParseGrid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "FS,BOS,ET,AC,SSH,LMF,--,STR,SV", nil},
		{"valid with spaces", "FS, BOS, ET, AC, SSH, LMF, --, STR, SV", nil},
		{"too short", "FS,BOS,ET", ErrBadLength},
		{"too long", "FS,BOS,ET,AC,SSH,LMF,--,STR,SV,SV", ErrBadLength},
		{"unknown code", "FS,BOS,ET,AC,SSH,LMF,--,STR,XX", ErrBadCode},
		{"duplicate room", "FS,FS,ET,AC,SSH,LMF,--,STR,SV", ErrDuplicateRoom},
		{"no empty", "FS,BOS,ET,AC,SSH,LMF,SV,STR,SV", ErrDuplicateRoom},
		{"two empties", "FS,BOS,ET,AC,SSH,--,--,STR,SV", ErrDuplicateRoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGrid(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseGrid(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGrid(%q) error = %v", tt.input, err)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate() = %v after successful parse", err)
			}
		})
	}
}

func TestGridStringRoundTrip(t *testing.T) {
	const s = "FS,BOS,ET,AC,SSH,LMF,--,STR,SV"
	g, err := ParseGrid(s)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if got := g.String(); got != s {
		t.Errorf("String() = %q, want %q", got, s)
	}
}

func TestEmptyTile(t *testing.T) {
	g, err := ParseGrid("FS,BOS,ET,AC,SSH,LMF,--,STR,SV")
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	tile, ok := g.EmptyTile()
	if !ok || tile != 6 {
		t.Errorf("EmptyTile() = (%d, %v), want (6, true)", tile, ok)
	}
}

func TestSwapped(t *testing.T) {
	g, err := ParseGrid("FS,BOS,ET,AC,SSH,LMF,--,STR,SV")
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	swapped := g.Swapped(6, 3)
	if swapped[6] != AncientCistern || swapped[3] != Empty {
		t.Errorf("Swapped(6, 3) = %v", swapped)
	}
	// Original is untouched: Grid is a value type.
	if g[6] != Empty || g[3] != AncientCistern {
		t.Errorf("Swapped mutated the receiver: %v", g)
	}
}

func TestShuffledValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		g := Shuffled(rng)
		if err := g.Validate(); err != nil {
			t.Fatalf("Shuffled grid %d invalid: %v (%v)", i, err, g)
		}
	}
}

func TestShuffledSeedDeterminism(t *testing.T) {
	a := Shuffled(rand.New(rand.NewSource(7)))
	b := Shuffled(rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("same seed produced different grids: %v vs %v", a, b)
	}
}

func TestRoomCodeRoundTrip(t *testing.T) {
	for r := Empty; r <= Sandship; r++ {
		got, ok := RoomFromCode(r.Code())
		if !ok || got != r {
			t.Errorf("RoomFromCode(%q) = (%v, %v), want (%v, true)", r.Code(), got, ok, r)
		}
	}
	if _, ok := RoomFromCode("nope"); ok {
		t.Error("RoomFromCode(\"nope\") ok = true, want false")
	}
}
