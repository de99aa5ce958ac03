package puzzle

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// ErrBudgetExhausted is returned by Evaluate when the search exceeds
// Options.MaxSteps before reaching a verdict.
var ErrBudgetExhausted = errors.New("search budget exhausted")

// The player always enters the board on tile 7 facing down.
const (
	entryTile   Tile      = 7
	entryFacing Direction = Down
)

// allEntrances has one bit per entrance.
const allEntrances uint16 = 1<<NumEntrances - 1

// Options tunes a search. The zero value (or a nil pointer) gives the
// default behavior: unbounded, memo-pruned, silent.
type Options struct {
	// MaxSteps caps the number of state expansions; 0 means unlimited.
	// When exceeded, Evaluate returns ErrBudgetExhausted.
	MaxSteps int

	// ExactVisited replaces the memo table's superset pruning with an
	// exact visited set over (grid, position, gates). Weaker pruning,
	// same verdicts; exists to cross-check that memoization is a pure
	// optimization.
	ExactVisited bool

	// Logger, when set, receives debug progress.
	Logger *log.Logger
}

// stateKey identifies a search state for memoization: the grid
// permutation plus the player position. The gate set is deliberately
// not part of the key; a position is worth revisiting exactly when the
// path to it carries gates the memoized best did not.
type stateKey struct {
	grid Grid
	pos  position
}

// exactKey identifies a search state including gates, for the
// ExactVisited cross-check mode.
type exactKey struct {
	grid  Grid
	pos   position
	gates GateSet
}

// frame records one backtracking step: the pre-operator state and which
// operator produced the child being explored.
type frame struct {
	grid  Grid
	pos   position
	op    int
	gates GateSet // restore source in ExactVisited mode only
}

type searcher struct {
	opts      Options
	gates     GateSet
	unreached uint16
	memo      map[stateKey]GateSet
	exact     map[exactKey]struct{}
	stats     Stats
}

// Evaluate decides whether the arrangement is solvable: whether, from
// the fixed entry point, some sequence of slides and panel warps visits
// all fifteen entrances. The verdict is a deterministic function of the
// grid. The context is checked between state expansions; cancellation
// surfaces as ctx.Err().
func Evaluate(ctx context.Context, grid Grid, opts *Options) (Result, error) {
	if err := grid.Validate(); err != nil {
		return Result{}, err
	}

	s := &searcher{
		unreached: allEntrances,
		memo:      make(map[stateKey]GateSet),
	}
	if opts != nil {
		s.opts = *opts
	}
	if s.opts.ExactVisited {
		s.exact = make(map[exactKey]struct{})
	}
	return s.run(ctx, grid)
}

// markVisited records one entrance sighting during a scan: clears its
// unreached bit and opens the gate it controls, if any.
func (s *searcher) markVisited(e Entrance) {
	s.unreached &^= 1 << e
	if g, ok := OpensGate(e); ok {
		s.gates = s.gates.With(g)
	}
}

// scan walks both chains from pos, marking every entrance seen. A walk
// runs under the gate set as of its start, so when a walk opens a gate
// the scan repeats until the gate set stops growing; a gate opened
// mid-chain then unlocks the corridors behind it on the next pass. At
// most four gates bound the iteration.
func (s *searcher) scan(grid Grid, pos position) {
	for {
		before := s.gates
		FollowBoth(grid, before, pos.tile, pos.facing, func(e Entrance, _ Tile) bool {
			s.markVisited(e)
			return false
		})
		if s.gates == before {
			return
		}
	}
}

// entryScan is the pre-search walk from the fixed entry point. It marks
// entrances like scan and additionally captures the first panel-hosting
// entrance encountered, which becomes the search's start position.
func (s *searcher) entryScan(grid Grid) (position, bool) {
	var (
		panelPos position
		found    bool
	)
	for {
		before := s.gates
		FollowBoth(grid, before, entryTile, entryFacing, func(e Entrance, t Tile) bool {
			s.markVisited(e)
			if !found && HasControlPanel(e) {
				panelPos = position{tile: t, facing: e.Wall()}
				found = true
			}
			return false
		})
		if s.gates == before {
			return panelPos, found
		}
	}
}

// enter expands a state: scan, solvable check, then the memo check.
// It reports whether the state should be pruned (already explored with
// equal-or-better gate progress) and whether all entrances are visited.
func (s *searcher) enter(grid Grid, pos position) (prune, solved bool) {
	s.stats.StatesExpanded++
	s.scan(grid, pos)
	if s.unreached == 0 {
		return false, true
	}

	if s.opts.ExactVisited {
		k := exactKey{grid: grid, pos: pos, gates: s.gates}
		if _, ok := s.exact[k]; ok {
			s.stats.MemoHits++
			return true, false
		}
		s.exact[k] = struct{}{}
		return false, false
	}

	k := stateKey{grid: grid, pos: pos}
	stored, ok := s.memo[k]
	if !ok {
		s.memo[k] = s.gates
		return false, false
	}
	if stored.ContainsAll(s.gates) {
		s.stats.MemoHits++
		return true, false
	}
	s.memo[k] = stored.Union(s.gates)
	s.gates = stored.Union(s.gates)
	return false, false
}

// restoreGates rewinds the gate set after popping back to a frame's
// state. With the memo table the entry for the restored state holds
// exactly the progress known there; in exact mode the frame carries it.
func (s *searcher) restoreGates(f frame) {
	if s.opts.ExactVisited {
		s.gates = f.gates
		return
	}
	s.gates = s.memo[stateKey{grid: f.grid, pos: f.pos}]
}

func (s *searcher) run(ctx context.Context, initial Grid) (Result, error) {
	if _, ok := EntranceAt(initial[entryTile], entryFacing); !ok {
		return Result{Verdict: StructuralFailure, Reason: ReasonNoEntryEntrance, Stats: s.stats}, nil
	}
	pos, ok := s.entryScan(initial)
	if !ok {
		return Result{Verdict: StructuralFailure, Reason: ReasonNoPanelFromEntry, Stats: s.stats}, nil
	}
	if s.opts.Logger != nil {
		s.opts.Logger.Debug("entry panel located", "tile", pos.tile, "facing", pos.facing, "gates", s.gates)
	}

	grid := initial
	var stack []frame

	// Each pass expands the current state; a successful operator pushes
	// a frame and descends, an exhausted or pruned state pops. A popped
	// frame resumes at the operator after the one it recorded, against
	// a state that was already scanned and memoized on the way down.
	for {
		if err := ctx.Err(); err != nil {
			return Result{Stats: s.stats}, err
		}
		if s.opts.MaxSteps > 0 && s.stats.StatesExpanded >= s.opts.MaxSteps {
			return Result{Stats: s.stats}, ErrBudgetExhausted
		}

		prune, solved := s.enter(grid, pos)
		if solved {
			return Result{Verdict: Solvable, Stats: s.stats}, nil
		}

		op := 0
		if prune {
			op = numOperators // skip straight to the pop
		}
		for {
			advanced := false
			for ; op < numOperators; op++ {
				next, nextPos, ok := applyOperator(op, grid, pos, s.gates)
				if !ok {
					continue
				}
				stack = append(stack, frame{grid: grid, pos: pos, op: op, gates: s.gates})
				if len(stack) > s.stats.MaxDepth {
					s.stats.MaxDepth = len(stack)
				}
				if s.opts.Logger != nil && s.stats.StatesExpanded%100000 == 0 {
					s.opts.Logger.Debug("searching", "expanded", s.stats.StatesExpanded, "depth", len(stack), "op", operatorNames[op])
				}
				grid, pos = next, nextPos
				advanced = true
				break
			}
			if advanced {
				break // descend: expand the new state
			}
			if len(stack) == 0 {
				return Result{Verdict: Unsolvable, Stats: s.stats}, nil
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			grid, pos = f.grid, f.pos
			s.restoreGates(f)
			op = f.op + 1
		}
	}
}
