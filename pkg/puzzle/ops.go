package puzzle

// position is where the player stands: a tile plus the wall they face.
// Positions are always anchored to an entrance context, never a free
// coordinate.
type position struct {
	tile   Tile
	facing Direction
}

// numOperators is the size of the fixed operator alphabet: four
// panel-reach operators followed by four slide operators.
const numOperators = 8

// operatorNames is indexed by operator number, in enumeration order.
var operatorNames = [numOperators]string{
	"reach(start)",
	"reach(lanayru-mining-facility)",
	"reach(earth-temple)",
	"reach(mini-boss)",
	"move(up)",
	"move(left)",
	"move(down)",
	"move(right)",
}

// applyOperator applies operator op to (grid, pos) under the current
// gates and returns the successor state. ok is false when the operator
// is inapplicable.
//
// Operators 0-3 are panel reaches: walk both chains from the player's
// position looking for the target panel entrance; on success the player
// warps to (found tile, that entrance's wall) and the grid is untouched.
// Operators 4-7 slide the neighbor of the empty tile in one direction
// into the empty tile; the slide is refused when there is no such
// neighbor or it is the player's own tile.
func applyOperator(op int, grid Grid, pos position, gates GateSet) (Grid, position, bool) {
	if op < len(panelEntrances) {
		target := panelEntrances[op]
		t, e, ok := FollowBoth(grid, gates, pos.tile, pos.facing, func(e Entrance, _ Tile) bool {
			return e == target
		})
		if !ok {
			return grid, pos, false
		}
		return grid, position{tile: t, facing: e.Wall()}, true
	}

	d := Direction(op - len(panelEntrances))
	empty, ok := grid.EmptyTile()
	if !ok {
		return grid, pos, false
	}
	from, _, ok := Neighbor(empty, d)
	if !ok || from == pos.tile {
		return grid, pos, false
	}
	return grid.Swapped(empty, from), pos, true
}
