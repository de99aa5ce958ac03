package puzzle

// Direction is one of the four cardinal facings on the board.
type Direction uint8

const (
	Up Direction = iota
	Left
	Down
	Right
)

// directionNames is indexed by Direction.
var directionNames = [4]string{"up", "left", "down", "right"}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Opposite returns the reverse facing: up<->down, left<->right.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Tile is a board position, 0..8 in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Tile = uint8

// Neighbor returns the tile adjacent to t in direction d together with
// the facing the walker has after crossing (the opposite of d). ok is
// false when the step would leave the board.
func Neighbor(t Tile, d Direction) (next Tile, facing Direction, ok bool) {
	switch d {
	case Up:
		if t < 3 {
			return 0, 0, false
		}
		next = t - 3
	case Left:
		if t%3 == 0 {
			return 0, 0, false
		}
		next = t - 1
	case Down:
		if t >= 6 {
			return 0, 0, false
		}
		next = t + 3
	case Right:
		if t%3 == 2 {
			return 0, 0, false
		}
		next = t + 1
	default:
		return 0, 0, false
	}
	return next, d.Opposite(), true
}
