package main

import (
	"fmt"
	"math/rand"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridplan"
	"github.com/pdrpinto/gridplan/internal/bench"
	"github.com/pdrpinto/gridplan/internal/gridgen"
)

var (
	benchSizes   []int
	benchTrials  int
	benchWorkers int
	benchDensity float64
	benchSeed    int64
	benchPlot    string
)

// benchCmd compares the planners on random obstacle fields
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time BFS and D* Lite on random grids",
	Long: `Generates --trials random square grids for every size in --sizes, runs both
planners on the same obstacle field and reports mean wall-clock time, CPU time,
expansions and allocation. Every job gets its own grid so jobs can run
concurrently on --workers workers. CPU and allocation figures are process-wide,
so they are only per-job with a single worker.`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{16, 32, 64, 128}, "grid side lengths")
	benchCmd.Flags().IntVar(&benchTrials, "trials", 5, "random grids per size")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 1, "concurrent jobs (CPU and allocation figures blend above 1)")
	benchCmd.Flags().Float64Var(&benchDensity, "density", 0.25, "wall probability per random-walk step")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "random seed")
	benchCmd.Flags().StringVar(&benchPlot, "plot", "", "write a PNG chart to this path")
}

func benchJobs(r *rand.Rand) []gridplan.Job {
	var jobs []gridplan.Job
	for _, size := range benchSizes {
		params := gridgen.DefaultParams(size, size)
		params.Density = benchDensity
		params.Clusters = size / 2
		for t := 0; t < benchTrials; t++ {
			seed := r.Int63()
			for _, alg := range []gridplan.Algorithm{gridplan.AlgorithmBFS, gridplan.AlgorithmDStarLite} {
				g, start, goal := gridgen.Generate(rand.New(rand.NewSource(seed)), params)
				if start == nil {
					continue
				}
				jobs = append(jobs, gridplan.Job{Grid: g, Start: start, Goal: goal, Algorithm: alg})
			}
		}
	}
	return jobs
}

func runBench(cmd *cobra.Command, args []string) error {
	jobs := benchJobs(rand.New(rand.NewSource(benchSeed)))
	collector := &bench.Collector{}

	logger.Info("Benchmark starting", zap.Int("jobs", len(jobs)), zap.Int("workers", benchWorkers))
	if benchWorkers > 1 {
		logger.Warn("CPU and allocation figures include concurrently running jobs", zap.Int("workers", benchWorkers))
	}
	if _, err := gridplan.RunBatch(cmd.Context(), jobs,
		gridplan.WithWorkers(benchWorkers),
		gridplan.WithMetricsSink(collector),
		gridplan.WithLogger(logger)); err != nil {
		return fmt.Errorf("benchmark aborted: %w", err)
	}

	summaries := bench.Summarize(collector.Samples())
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tRUNS\tFOUND\tMEAN ms\tSTDDEV ms\tCPU ms\tEXPANDED\tALLOC KB")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.3f\t%.3f\t%.3f\t%.0f\t%.1f\n",
			s.Algorithm, s.Size, s.Runs, s.Found, s.MeanMillis, s.StdDevMillis, s.MeanCPUMillis, s.MeanExpanded, s.MeanAllocBytes/1024)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if benchPlot != "" {
		if err := bench.Plot(summaries, benchPlot); err != nil {
			return err
		}
		logger.Info("Plot written", zap.String("path", benchPlot))
	}
	return nil
}
