package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridplan"
	"github.com/pdrpinto/gridplan/internal/render"
)

var (
	runAlgorithm string
	runPlain     bool
)

// runCmd plans one scenario and prints the marked grid
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a planner on the configured scenario",
	Long: `Builds the scenario grid, runs BFS or D* Lite from start to goal and prints
the grid with the path marked.

  .  empty     #  blocked     S  start     G  goal     *  path`,
	Args: cobra.NoArgs,
	RunE: runScenario,
}

func init() {
	runCmd.Flags().StringVarP(&runAlgorithm, "algorithm", "a", "", "bfs or dstar-lite (overrides config)")
	runCmd.Flags().BoolVar(&runPlain, "plain", false, "print without colors")
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario := cfg.Scenario
	if runAlgorithm != "" {
		scenario.Algorithm = runAlgorithm
	}
	algorithm, err := scenario.AlgorithmValue()
	if err != nil {
		return err
	}
	grid, start, goal, err := scenario.Build()
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	logger.Info("Planning",
		zap.Stringer("algorithm", algorithm),
		zap.Int("rows", grid.Rows()),
		zap.Int("cols", grid.Cols()),
		zap.Stringer("start", start.Coord()),
		zap.Stringer("goal", goal.Coord()))

	result := gridplan.Search(grid, algorithm, start, goal,
		gridplan.WithLogger(logger),
		gridplan.WithDiagonals(scenario.DiagonalsEnabled()))

	out := cmd.OutOrStdout()
	if runPlain {
		fmt.Fprint(out, render.Text(grid))
	} else {
		fmt.Fprintln(out, render.Styled(grid, render.DefaultStyles()))
	}
	if !result.Found {
		fmt.Fprintf(out, "%s: no path (expanded %d, %s)\n", algorithm, result.ExpandedNodes, result.Elapsed)
		return nil
	}
	fmt.Fprintf(out, "%s: %d steps, cost %.1f (expanded %d, %s)\n",
		algorithm, result.Steps(), result.TotalCost, result.ExpandedNodes, result.Elapsed)
	return nil
}
