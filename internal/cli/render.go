package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lepelog/skykeep-puzzle/pkg/puzzle"
)

// renderGrid renders the arrangement as a bordered 3x3 table of room
// codes, row-major, with the empty tile dimmed.
func renderGrid(g puzzle.Grid) string {
	rows := make([][]string, 3)
	for r := 0; r < 3; r++ {
		row := make([]string, 3)
		for c := 0; c < 3; c++ {
			row[c] = g[r*3+c].Code()
		}
		rows[r] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
			if row >= 0 && row < 3 && col >= 0 && col < 3 && g[row*3+col] == puzzle.Empty {
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	return t.Render()
}

// verdictText returns the styled one-line verdict.
func verdictText(res puzzle.Result) string {
	switch res.Verdict {
	case puzzle.Solvable:
		return StyleSuccess.Render(iconSuccess + " solvable")
	case puzzle.Unsolvable:
		return StyleError.Render(iconError + " unsolvable")
	case puzzle.StructuralFailure:
		return StyleWarning.Render(fmt.Sprintf("%s structural failure: %s", iconWarning, res.Reason))
	}
	return res.Verdict.String()
}

// printResult prints the grid, verdict and search statistics.
func printResult(g puzzle.Grid, res puzzle.Result) {
	fmt.Println(renderGrid(g))
	fmt.Println(verdictText(res))
	printDetail("%d states expanded · %d memo hits · max depth %d",
		res.Stats.StatesExpanded, res.Stats.MemoHits, res.Stats.MaxDepth)
}

// sampleTally accumulates verdict counts for a sampling run.
type sampleTally struct {
	Solvable   int
	Unsolvable int
	Structural int
	Errors     int
}

func (t sampleTally) total() int {
	return t.Solvable + t.Unsolvable + t.Structural + t.Errors
}

// renderSampleSummary renders the tally as a bordered table with
// per-verdict rates.
func renderSampleSummary(tally sampleTally, elapsed string) string {
	total := tally.total()
	rate := func(n int) string {
		if total == 0 {
			return "0.0%"
		}
		return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
	}

	rows := [][]string{
		{"solvable", fmt.Sprintf("%d", tally.Solvable), rate(tally.Solvable)},
		{"unsolvable", fmt.Sprintf("%d", tally.Unsolvable), rate(tally.Unsolvable)},
		{"structural failure", fmt.Sprintf("%d", tally.Structural), rate(tally.Structural)},
	}
	if tally.Errors > 0 {
		rows = append(rows, []string{"errors", fmt.Sprintf("%d", tally.Errors), rate(tally.Errors)})
	}
	rows = append(rows, []string{"total", fmt.Sprintf("%d", total), elapsed})

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Verdict", "Count", "Rate").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				base = base.Align(lipgloss.Right)
			}
			if row == len(rows)-1 {
				return base.Foreground(colorGray)
			}
			switch rows[row][0] {
			case "solvable":
				return base.Foreground(colorGreen)
			case "unsolvable":
				return base.Foreground(colorRed)
			default:
				return base.Foreground(colorYellow)
			}
		})

	return t.Render()
}
