package puzzle

// Visitor is invoked at every entrance a chain walk passes through,
// including both sides of each room crossed. Returning true stops the
// walk at that entrance. Visitors double as pure scans (always return
// false) and as searches for a specific entrance; any gate or bookkeeping
// mutation is an effect the visitor performs on the caller's state, never
// on the walk's own inputs.
type Visitor func(e Entrance, t Tile) bool

// Follow walks the entrance chain starting at the wall of tile in the
// given facing. Each step resolves the entrance on that wall, visits it,
// crosses the room's internal corridor under the fixed gate set, visits
// the exit entrance, and advances to the adjacent tile. The walk ends at
// a solid wall, a dead-ended or gate-closed corridor, the board edge, or
// a revisited (tile, facing) pair; rooms can be arranged so the chain
// loops, and a loop proves no new entrance is coming.
//
// On visitor acceptance Follow returns the tile and entrance it stopped
// at; otherwise found is false.
func Follow(grid Grid, gates GateSet, tile Tile, facing Direction, visit Visitor) (Tile, Entrance, bool) {
	var seen [9][4]bool
	for {
		if seen[tile][facing] {
			return 0, 0, false
		}
		seen[tile][facing] = true

		e, ok := EntranceAt(grid[tile], facing)
		if !ok {
			return 0, 0, false
		}
		if visit(e, tile) {
			return tile, e, true
		}

		exit, ok := TraverseInternal(e, gates)
		if !ok {
			return 0, 0, false
		}
		if visit(exit, tile) {
			return tile, exit, true
		}

		next, nextFacing, ok := Neighbor(tile, exit.Wall())
		if !ok {
			return 0, 0, false
		}
		tile, facing = next, nextFacing
	}
}

// FollowBoth runs Follow from (tile, facing) and, when that walk ends
// without acceptance, retries from the adjacent tile one step along
// facing. A walker standing on the boundary between two tiles can enter
// either room; the second walk covers the case where the walker's own
// tile has no entrance on that wall but the tile ahead does.
func FollowBoth(grid Grid, gates GateSet, tile Tile, facing Direction, visit Visitor) (Tile, Entrance, bool) {
	if t, e, ok := Follow(grid, gates, tile, facing, visit); ok {
		return t, e, true
	}
	if next, nextFacing, ok := Neighbor(tile, facing); ok {
		return Follow(grid, gates, next, nextFacing, visit)
	}
	return 0, 0, false
}
