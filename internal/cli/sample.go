package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lepelog/skykeep-puzzle/pkg/puzzle"
)

// sampleCommand creates the sample command for measuring solvability rates.
func (c *CLI) sampleCommand() *cobra.Command {
	var (
		count        int
		workers      int
		seed         int64
		maxSteps     int
		solvableOnly bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Evaluate random arrangements and report verdict rates",
		Long: `Evaluate random arrangements and report verdict rates.

Sampling shuffles --count arrangements, evaluates each one on a worker
pool and prints a verdict breakdown. With --seed the shuffled batch is
reproducible regardless of worker count.

Use --solvable-only to also list every solvable arrangement found, one
per line, ready to feed back into evaluate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSample(cmd.Context(), count, workers, seed, maxSteps, solvableOnly)
		},
	}

	cmd.Flags().IntVar(&count, "count", c.Config.Sample.Count, "number of arrangements to evaluate")
	cmd.Flags().IntVar(&workers, "workers", c.Config.Sample.Workers, "parallel evaluation workers")
	cmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed (0 means time-based)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", c.Config.Solver.MaxSteps, "state expansion budget per arrangement (0 means unlimited)")
	cmd.Flags().BoolVar(&solvableOnly, "solvable-only", false, "list solvable arrangements after the summary")

	return cmd
}

// sampleOutcome pairs one evaluated arrangement with its verdict.
type sampleOutcome struct {
	grid puzzle.Grid
	res  puzzle.Result
	err  error
}

// runSample shuffles a batch of arrangements, fans them out over a
// worker pool and renders the verdict tally.
func (c *CLI) runSample(ctx context.Context, count, workers int, seed int64, maxSteps int, solvableOnly bool) error {
	logger := loggerFromContext(ctx)

	if count < 1 {
		count = 1
	}
	if workers < 1 {
		workers = 1
	}
	if workers > count {
		workers = count
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runID := uuid.New()
	logger.Debug("sampling", "run", runID, "count", count, "workers", workers, "seed", seed)

	// Shuffle the whole batch up front from a single source so --seed
	// gives the same arrangements no matter how many workers run.
	rng := rand.New(rand.NewSource(seed))
	grids := make([]puzzle.Grid, count)
	for i := range grids {
		grids[i] = puzzle.Shuffled(rng)
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Evaluating %d arrangements...", count))
	spinner.Start()

	start := time.Now()
	jobs := make(chan puzzle.Grid)
	outcomes := make(chan sampleOutcome, count)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				res, err := puzzle.Evaluate(ctx, g, &puzzle.Options{MaxSteps: maxSteps})
				outcomes <- sampleOutcome{grid: g, res: res, err: err}
			}
		}()
	}

feed:
	for _, g := range grids {
		select {
		case jobs <- g:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(outcomes)

	var tally sampleTally
	var solvable []puzzle.Grid
	for o := range outcomes {
		switch {
		case errors.Is(o.err, context.Canceled):
			// dropped below with the interrupt warning
		case o.err != nil:
			tally.Errors++
			logger.Warn("evaluation failed", "grid", o.grid, "err", o.err)
		case o.res.Verdict == puzzle.Solvable:
			tally.Solvable++
			solvable = append(solvable, o.grid)
		case o.res.Verdict == puzzle.Unsolvable:
			tally.Unsolvable++
		default:
			tally.Structural++
		}
	}
	elapsed := time.Since(start).Round(time.Millisecond)

	spinner.Stop()
	if ctx.Err() != nil {
		printWarning("interrupted after %d of %d arrangements", tally.total(), count)
		return ctx.Err()
	}

	printInfo("run %s · seed %d", runID, seed)
	fmt.Println(renderSampleSummary(tally, elapsed.String()))

	if solvableOnly {
		sort.Slice(solvable, func(i, j int) bool {
			return solvable[i].String() < solvable[j].String()
		})
		for _, g := range solvable {
			fmt.Println(StyleValue.Render(g.String()))
		}
	}

	logger.Debug("sampling complete", "run", runID, "elapsed", elapsed)
	return nil
}
