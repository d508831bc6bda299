// Package bench aggregates planner timings and charts them.
package bench

import (
	"fmt"
	"image/color"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pdrpinto/gridplan"
)

// Sample is one observed planner call.
type Sample struct {
	Algorithm gridplan.Algorithm
	Size      int
	Found     bool
	Elapsed   time.Duration
	CPU       time.Duration
	Expanded  int
	Alloc     uint64
}

// Collector is a gridplan.MetricsSink safe for concurrent batch workers.
// Samples are bucketed by the larger grid dimension.
type Collector struct {
	mu      sync.Mutex
	samples []Sample
}

func (c *Collector) ObserveRun(s gridplan.RunStats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = append(c.samples, Sample{
		Algorithm: s.Algorithm,
		Size:      max(s.Rows, s.Cols),
		Found:     s.Found,
		Elapsed:   s.Elapsed,
		CPU:       s.CPUTime,
		Expanded:  s.ExpandedNodes,
		Alloc:     s.AllocBytes,
	})
}

// Samples returns a copy of everything recorded so far.
func (c *Collector) Samples() []Sample {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Sample(nil), c.samples...)
}

// Summary aggregates the samples for one algorithm and grid size.
type Summary struct {
	Algorithm      gridplan.Algorithm
	Size           int
	Runs           int
	Found          int
	MeanMillis     float64
	StdDevMillis   float64
	MeanCPUMillis  float64
	MeanExpanded   float64
	MeanAllocBytes float64
}

// Summarize groups samples by (algorithm, size), sorted by algorithm then size.
func Summarize(samples []Sample) []Summary {
	type groupKey struct {
		alg  gridplan.Algorithm
		size int
	}
	groups := make(map[groupKey][]Sample)
	for _, s := range samples {
		k := groupKey{s.Algorithm, s.Size}
		groups[k] = append(groups[k], s)
	}

	out := make([]Summary, 0, len(groups))
	for k, group := range groups {
		millis := make([]float64, len(group))
		cpu := make([]float64, len(group))
		expanded := make([]float64, len(group))
		alloc := make([]float64, len(group))
		found := 0
		for i, s := range group {
			millis[i] = float64(s.Elapsed) / float64(time.Millisecond)
			cpu[i] = float64(s.CPU) / float64(time.Millisecond)
			expanded[i] = float64(s.Expanded)
			alloc[i] = float64(s.Alloc)
			if s.Found {
				found++
			}
		}
		mean, std := stat.MeanStdDev(millis, nil)
		if len(group) < 2 {
			std = 0
		}
		out = append(out, Summary{
			Algorithm:      k.alg,
			Size:           k.size,
			Runs:           len(group),
			Found:          found,
			MeanMillis:     mean,
			StdDevMillis:   std,
			MeanCPUMillis:  stat.Mean(cpu, nil),
			MeanExpanded:   stat.Mean(expanded, nil),
			MeanAllocBytes: stat.Mean(alloc, nil),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Algorithm != out[j].Algorithm {
			return out[i].Algorithm < out[j].Algorithm
		}
		return out[i].Size < out[j].Size
	})
	return out
}

var lineColors = []color.RGBA{
	{R: 0, G: 121, B: 241, A: 255},
	{R: 230, G: 41, B: 55, A: 255},
}

// Plot writes a PNG chart of mean elapsed time against grid size, one line
// per algorithm.
func Plot(summaries []Summary, path string) error {
	p := plot.New()
	p.Title.Text = "Planner wall-clock time"
	p.X.Label.Text = "Grid size (cells per side)"
	p.Y.Label.Text = "Mean time (ms)"

	series := make(map[gridplan.Algorithm]plotter.XYs)
	var algorithms []gridplan.Algorithm
	for _, s := range summaries {
		if _, ok := series[s.Algorithm]; !ok {
			algorithms = append(algorithms, s.Algorithm)
		}
		series[s.Algorithm] = append(series[s.Algorithm], plotter.XY{X: float64(s.Size), Y: s.MeanMillis})
	}

	for i, alg := range algorithms {
		line, err := plotter.NewLine(series[alg])
		if err != nil {
			return fmt.Errorf("failed to build %s line: %w", alg, err)
		}
		line.Color = lineColors[i%len(lineColors)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(alg.String(), line)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
