package gridplan

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Algorithm selects a planner.
type Algorithm int

const (
	AlgorithmBFS Algorithm = iota
	AlgorithmDStarLite
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDStarLite:
		return "dstar-lite"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm accepts "bfs", "dstar", "dstar-lite", "dstarlite", "d*" and
// "d*lite", case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return AlgorithmBFS, nil
	case "dstar", "dstar-lite", "dstarlite", "d*", "d*lite":
		return AlgorithmDStarLite, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) valid() bool {
	return a == AlgorithmBFS || a == AlgorithmDStarLite
}

// Result contains the outcome of a planner call.
type Result struct {
	Algorithm     Algorithm
	Found         bool
	Path          []Coord
	TotalCost     float64
	ExpandedNodes int
	Elapsed       time.Duration
}

// Steps is the number of moves along Path.
func (r Result) Steps() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// RunStats is what a MetricsSink receives after every planner call.
// AllocBytes, Mallocs and CPUTime are process-wide deltas, so calls running
// concurrently (RunBatch with more than one worker) see each other's work.
// CPUTime is zero on platforms without getrusage.
type RunStats struct {
	Algorithm     Algorithm
	Found         bool
	Elapsed       time.Duration
	CPUTime       time.Duration
	AllocBytes    uint64
	Mallocs       uint64
	ExpandedNodes int
	PathLength    int
	Rows, Cols    int
}

// MetricsSink observes planner calls.
type MetricsSink interface {
	ObserveRun(RunStats)
}

// MetricsFunc adapts a function to MetricsSink.
type MetricsFunc func(RunStats)

func (f MetricsFunc) ObserveRun(s RunStats) { f(s) }

// ChangeDetector reports whether edge costs changed while the agent moved
// from last to current. When it returns true D* Lite replans incrementally.
type ChangeDetector func(last, current Coord) bool

// Options defines parameters for the planners.
type Options struct {
	Logger          *zap.Logger
	Metrics         MetricsSink
	ChangeDetector  ChangeDetector
	Diagonals       bool
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for debug output. Nil means no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMetricsSink receives timing and allocation deltas after each call.
func WithMetricsSink(sink MetricsSink) Option {
	return func(options *Options) { options.Metrics = sink }
}

// WithChangeDetector installs the environment-change predicate for D* Lite.
func WithChangeDetector(detector ChangeDetector) Option {
	return func(options *Options) { options.ChangeDetector = detector }
}

// WithDiagonals selects 8-connectivity (true, the default) or
// 4-connectivity for D* Lite. BFS is always 4-connected.
func WithDiagonals(diagonals bool) Option {
	return func(options *Options) { options.Diagonals = diagonals }
}

// WithWorkers specifies how many jobs RunBatch runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Diagonals:       true,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = zap.NewNop()
	}
	if searchOptions.ChangeDetector == nil {
		searchOptions.ChangeDetector = func(Coord, Coord) bool { return false }
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Search runs the selected planner. algorithm must be AlgorithmBFS or
// AlgorithmDStarLite; any other value panics.
func Search(g *Grid, algorithm Algorithm, start, goal *Cell, options ...Option) Result {
	switch algorithm {
	case AlgorithmBFS:
		return BFS(g, start, goal, options...)
	case AlgorithmDStarLite:
		return DStarLite(g, start, goal, options...)
	default:
		panic(fmt.Sprintf("gridplan: Search called with %v", algorithm))
	}
}

// probe samples wall-clock time and, when a sink is installed, CPU and
// allocation counters around one planner call.
type probe struct {
	sink      MetricsSink
	started   time.Time
	cpuBefore time.Duration
	before    runtime.MemStats
}

func startProbe(sink MetricsSink) *probe {
	p := &probe{sink: sink}
	if sink != nil {
		runtime.ReadMemStats(&p.before)
		p.cpuBefore = processCPUTime()
	}
	p.started = time.Now()
	return p
}

func (p *probe) finish(g *Grid, result *Result) {
	result.Elapsed = time.Since(p.started)
	if p.sink == nil {
		return
	}
	cpu := processCPUTime() - p.cpuBefore
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	p.sink.ObserveRun(RunStats{
		Algorithm:     result.Algorithm,
		Found:         result.Found,
		Elapsed:       result.Elapsed,
		CPUTime:       cpu,
		AllocBytes:    after.TotalAlloc - p.before.TotalAlloc,
		Mallocs:       after.Mallocs - p.before.Mallocs,
		ExpandedNodes: result.ExpandedNodes,
		PathLength:    result.Steps(),
		Rows:          g.Rows(),
		Cols:          g.Cols(),
	})
}
