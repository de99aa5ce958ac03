package puzzle

// Verdict is the outcome of evaluating one grid.
type Verdict uint8

const (
	// Unsolvable means the search exhausted the reachable state space
	// without visiting every entrance. A normal negative result.
	Unsolvable Verdict = iota
	// Solvable means some operator sequence visits all fifteen entrances.
	Solvable
	// StructuralFailure means the arrangement fails before the search
	// starts; Result.Reason says why.
	StructuralFailure
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Unsolvable:
		return "unsolvable"
	case Solvable:
		return "solvable"
	case StructuralFailure:
		return "structural failure"
	}
	return "invalid"
}

// Structural failure reasons.
const (
	ReasonNoEntryEntrance  = "no entrance at fixed entry point"
	ReasonNoPanelFromEntry = "no control panel reachable from entry"
)

// Stats carries counters from one search invocation.
type Stats struct {
	// StatesExpanded is the number of (grid, position) states scanned.
	StatesExpanded int
	// MemoHits is the number of expansions pruned by the memo table.
	MemoHits int
	// MaxDepth is the deepest backtracking stack observed.
	MaxDepth int
}

// Result is the outcome of Evaluate.
type Result struct {
	Verdict Verdict
	// Reason is set when Verdict is StructuralFailure.
	Reason string
	Stats  Stats
}
