package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lepelog/skykeep-puzzle/pkg/puzzle"
)

// evaluateCommand creates the evaluate command for checking a single arrangement.
func (c *CLI) evaluateCommand() *cobra.Command {
	var (
		seed     int64
		pick     int
		maxSteps int
		exact    bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate [grid]",
		Short: "Decide whether one arrangement is solvable",
		Long: `Decide whether one arrangement is solvable.

With no argument, evaluate shuffles a random arrangement (use --seed for
a reproducible one). An arrangement can also be given explicitly as nine
comma-separated room codes in row-major order, with -- marking the empty
tile:

  skykeep evaluate FS,BOS,ET,AC,SSH,LMF,--,STR,SV

Room codes: STR (Start), SV (Skyview), ET (Earth Temple), LMF (Lanayru
Mining Facility), BOS (Mini Boss), AC (Ancient Cistern), FS (Fire
Sanctuary), SSH (Sandship).

Use --pick to shuffle several candidates and choose one interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			return c.runEvaluate(cmd.Context(), arg, seed, pick, maxSteps, exact)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (0 means time-based)")
	cmd.Flags().IntVar(&pick, "pick", 0, "shuffle N candidates and pick one interactively")
	cmd.Flags().IntVar(&maxSteps, "max-steps", c.Config.Solver.MaxSteps, "state expansion budget (0 means unlimited)")
	cmd.Flags().BoolVar(&exact, "exact", false, "disable memo pruning and use an exact visited set (slow)")

	return cmd
}

// runEvaluate resolves the arrangement, runs the search and prints the verdict.
func (c *CLI) runEvaluate(ctx context.Context, arg string, seed int64, pick, maxSteps int, exact bool) error {
	logger := loggerFromContext(ctx)

	grid, err := resolveGrid(arg, seed, pick, logger.Debug)
	if err != nil {
		return err
	}
	if grid == nil {
		printWarning("no arrangement selected")
		return nil
	}

	prog := newProgress(logger)
	res, err := puzzle.Evaluate(ctx, *grid, &puzzle.Options{
		MaxSteps:     maxSteps,
		ExactVisited: exact,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}
	prog.done(fmt.Sprintf("Searched %d states", res.Stats.StatesExpanded))

	printResult(*grid, res)
	return nil
}

// resolveGrid produces the arrangement to evaluate: parsed from arg,
// chosen interactively, or shuffled. A nil grid with nil error means
// the interactive picker was dismissed.
func resolveGrid(arg string, seed int64, pick int, debugf func(any, ...any)) (*puzzle.Grid, error) {
	if arg != "" {
		g, err := puzzle.ParseGrid(arg)
		if err != nil {
			return nil, fmt.Errorf("parse grid: %w", err)
		}
		return &g, nil
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	debugf("shuffling", "seed", seed)
	rng := rand.New(rand.NewSource(seed))

	if pick > 0 {
		candidates := make([]puzzle.Grid, pick)
		for i := range candidates {
			candidates[i] = puzzle.Shuffled(rng)
		}
		model, err := tea.NewProgram(NewGridPickerModel(candidates)).Run()
		if err != nil {
			return nil, fmt.Errorf("run picker: %w", err)
		}
		picker, ok := model.(GridPickerModel)
		if !ok || picker.Selected == nil {
			return nil, nil
		}
		return picker.Selected, nil
	}

	g := puzzle.Shuffled(rng)
	return &g, nil
}
