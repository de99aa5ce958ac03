package puzzle

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// EntranceGraphDOT returns a Graphviz DOT representation of the static
// room-entrance graph: one cluster per room, one node per entrance, and
// the internal corridors as edges. Gated corridors render dashed and
// labeled with their gate; panel-hosting entrances render as boxes;
// gate-opening entrances carry the gate name in their label.
//
// The graph is a property of the rules, not of any particular grid, so
// EntranceGraphDOT takes no arguments.
func EntranceGraphDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph entrances {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white];\n\n")

	rooms := []Room{Start, Skyview, EarthTemple, LanayruMiningFacility, MiniBoss, AncientCistern, FireSanctuary, Sandship}
	for _, room := range rooms {
		fmt.Fprintf(&buf, "  subgraph cluster_%s {\n", room.Code())
		fmt.Fprintf(&buf, "    label=%q;\n", room.String())
		for e := Entrance(0); e < NumEntrances; e++ {
			if e.Room() != room {
				continue
			}
			label := e.Wall().String()
			if g, ok := OpensGate(e); ok {
				label += "\\nopens " + g.String()
			}
			shape := "ellipse"
			if HasControlPanel(e) {
				shape = "box"
			}
			fmt.Fprintf(&buf, "    e%d [label=%q, shape=%s];\n", e, label, shape)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for e := Entrance(0); e < NumEntrances; e++ {
		link, ok := internalLinks[e]
		if !ok {
			continue
		}
		if link.gated {
			fmt.Fprintf(&buf, "  e%d -> e%d [style=dashed, label=%q];\n", e, link.to, link.gate.String())
		} else {
			fmt.Fprintf(&buf, "  e%d -> e%d;\n", e, link.to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderEntranceGraphSVG renders the entrance graph as an SVG document
// via in-process Graphviz. Errors are wrapped with %w.
func RenderEntranceGraphSVG(ctx context.Context) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(EntranceGraphDOT()))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
