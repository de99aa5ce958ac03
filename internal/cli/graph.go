package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lepelog/skykeep-puzzle/pkg/puzzle"
)

// graphCommand creates the graph command for exporting the entrance graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the entrance connection graph",
		Long: `Export the entrance connection graph.

The graph shows every room entrance, the internal links between them,
which links are gated, and which entrances carry a control panel or
open a gate. DOT output goes to stdout unless --output is given; SVG
output always goes to a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), format, output)
		},
	}

	cmd.Flags().StringVar(&format, "format", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout for dot, entrances.svg for svg)")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, format, output string) error {
	logger := loggerFromContext(ctx)

	switch format {
	case "dot":
		dot := puzzle.EntranceGraphDOT()
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write dot file: %w", err)
		}
		printSuccess("Wrote entrance graph")
		printFile(output)
		return nil

	case "svg":
		if output == "" {
			output = "entrances.svg"
		}
		logger.Debug("rendering entrance graph", "output", output)
		svg, err := puzzle.RenderEntranceGraphSVG(ctx)
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
		if err := os.WriteFile(output, svg, 0o644); err != nil {
			return fmt.Errorf("write svg file: %w", err)
		}
		printSuccess("Wrote entrance graph")
		printFile(output)
		return nil

	default:
		return fmt.Errorf("unknown format %q (want dot or svg)", format)
	}
}
