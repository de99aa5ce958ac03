package cli

import (
	"io"
	"testing"
)

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"evaluate":   false,
		"sample":     false,
		"graph":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestResolveGridParsesArg(t *testing.T) {
	g, err := resolveGrid("FS,BOS,ET,AC,SSH,LMF,--,STR,SV", 0, 0, func(any, ...any) {})
	if err != nil {
		t.Fatalf("resolveGrid() error = %v", err)
	}
	if g == nil {
		t.Fatal("resolveGrid() = nil, want grid")
	}
	if got := g.String(); got != "FS,BOS,ET,AC,SSH,LMF,--,STR,SV" {
		t.Errorf("resolveGrid() = %q, want input round-trip", got)
	}
}

func TestResolveGridBadArg(t *testing.T) {
	if _, err := resolveGrid("STR,STR,STR", 0, 0, func(any, ...any) {}); err == nil {
		t.Error("resolveGrid() error = nil, want parse error")
	}
}

func TestResolveGridSeedDeterministic(t *testing.T) {
	debugf := func(any, ...any) {}
	a, err := resolveGrid("", 42, 0, debugf)
	if err != nil {
		t.Fatalf("resolveGrid() error = %v", err)
	}
	b, err := resolveGrid("", 42, 0, debugf)
	if err != nil {
		t.Fatalf("resolveGrid() error = %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("same seed gave %q and %q", a, b)
	}
}
