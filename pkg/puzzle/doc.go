// Package puzzle evaluates sliding-room arrangements for solvability.
//
// # Overview
//
// The puzzle is a 3x3 sliding-tile board whose tiles are dungeon rooms.
// Eight named rooms plus one empty tile occupy the nine positions. Rooms
// carry fixed internal corridors between their entrances, some of which
// are blocked by gates until the matching control panel has been visited.
// The player stands on a tile facing a direction, walks chains of
// corridors across adjacent tiles, and may slide a room into the empty
// tile (never the room the player occupies).
//
// An arrangement is solvable when, starting from the fixed entry point
// (tile 7 facing down), some interleaving of slides and panel warps
// visits all fifteen entrances. [Evaluate] decides this by exhaustive
// depth-first search over (grid, position) states with gate-set
// memoization.
//
// # Basic Usage
//
//	grid, err := puzzle.ParseGrid("FS,BOS,ET,AC,SSH,LMF,--,STR,SV")
//	if err != nil {
//		return err
//	}
//	res, err := puzzle.Evaluate(context.Background(), grid, nil)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Verdict) // Solvable
//
// The static room-entrance graph can be exported with [EntranceGraphDOT]
// or rendered directly with [RenderEntranceGraphSVG].
package puzzle
