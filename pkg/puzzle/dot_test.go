package puzzle

import (
	"strings"
	"testing"
)

func TestEntranceGraphDOT(t *testing.T) {
	dot := EntranceGraphDOT()

	if !strings.HasPrefix(dot, "digraph entrances {") {
		t.Fatalf("DOT output does not start with digraph header:\n%s", dot)
	}
	for _, room := range []string{"STR", "SV", "ET", "LMF", "BOS", "AC", "FS", "SSH"} {
		if !strings.Contains(dot, "subgraph cluster_"+room) {
			t.Errorf("DOT output missing cluster for %s", room)
		}
	}
	for _, node := range []string{"e0 [", "e14 ["} {
		if !strings.Contains(dot, node) {
			t.Errorf("DOT output missing entrance node %q", node)
		}
	}
	// Gated links are dashed and labeled.
	if !strings.Contains(dot, "style=dashed") {
		t.Error("DOT output has no dashed gated links")
	}
	if !strings.Contains(dot, `"starting"`) {
		t.Error("DOT output missing starting gate label")
	}
	// Sandship dead-ends: 14 internal links for 15 entrances.
	if got := strings.Count(dot, "->"); got != 14 {
		t.Errorf("DOT output has %d edges, want 14", got)
	}
}
