package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Validation errors returned by Grid.Validate and ParseGrid.
var (
	// ErrDuplicateRoom indicates a room appears on more than one tile.
	ErrDuplicateRoom = errors.New("duplicate room")
	// ErrMissingEmpty indicates the grid has no empty tile.
	ErrMissingEmpty = errors.New("no empty tile")
	// ErrBadCode indicates an unrecognized room code during parsing.
	ErrBadCode = errors.New("unknown room code")
	// ErrBadLength indicates a parsed grid with other than nine tiles.
	ErrBadLength = errors.New("grid must have exactly 9 tiles")
)

// Grid is the full board state: nine tiles in row-major order, each
// holding a room or Empty. Grid is a value type; assignment snapshots
// the whole board and grids compare with ==.
type Grid [9]Room

// Validate checks the solver precondition: all nine entries distinct,
// which with nine tiles and nine possible values forces exactly one
// Empty and all eight rooms present.
func (g Grid) Validate() error {
	var seen [9]bool
	for t, r := range g {
		if int(r) >= len(seen) {
			return fmt.Errorf("tile %d: %w: value %d", t, ErrBadCode, r)
		}
		if seen[r] {
			return fmt.Errorf("tile %d: %w: %s", t, ErrDuplicateRoom, r.Code())
		}
		seen[r] = true
	}
	if !seen[Empty] {
		return ErrMissingEmpty
	}
	return nil
}

// EmptyTile returns the position of the empty tile. The grid must be
// valid; an all-occupied grid returns ok=false.
func (g Grid) EmptyTile() (Tile, bool) {
	for t, r := range g {
		if r == Empty {
			return Tile(t), true
		}
	}
	return 0, false
}

// TileOf returns the position of room r, or ok=false when absent.
func (g Grid) TileOf(r Room) (Tile, bool) {
	for t, room := range g {
		if room == r {
			return Tile(t), true
		}
	}
	return 0, false
}

// Swapped returns a copy of the grid with tiles a and b exchanged.
func (g Grid) Swapped(a, b Tile) Grid {
	g[a], g[b] = g[b], g[a]
	return g
}

// String renders the board as nine comma-separated codes, the same form
// ParseGrid accepts.
func (g Grid) String() string {
	codes := make([]string, len(g))
	for t, r := range g {
		codes[t] = r.Code()
	}
	return strings.Join(codes, ",")
}

// ParseGrid parses nine comma-separated room codes ("--" for the empty
// tile) into a validated Grid.
func ParseGrid(s string) (Grid, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 9 {
		return Grid{}, fmt.Errorf("%w, got %d", ErrBadLength, len(parts))
	}
	var g Grid
	for t, p := range parts {
		r, ok := RoomFromCode(strings.TrimSpace(p))
		if !ok {
			return Grid{}, fmt.Errorf("tile %d: %w: %q", t, ErrBadCode, p)
		}
		g[t] = r
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

// Shuffled returns a uniformly random valid grid drawn from rng.
func Shuffled(rng *rand.Rand) Grid {
	g := Grid{Empty, Start, Skyview, EarthTemple, LanayruMiningFacility, MiniBoss, AncientCistern, FireSanctuary, Sandship}
	rng.Shuffle(len(g), func(i, j int) {
		g[i], g[j] = g[j], g[i]
	})
	return g
}
