// Package config loads planner scenarios and CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridplan"
)

var (
	ErrNoStart         = errors.New("scenario has no start cell")
	ErrNoGoal          = errors.New("scenario has no goal cell")
	ErrOutOfRange      = errors.New("coordinate outside grid")
	ErrBlockedEndpoint = errors.New("start or goal is blocked")
	ErrSameEndpoints   = errors.New("start and goal are the same cell")
	ErrBadLayout       = errors.New("malformed layout")
)

// Config is the root configuration.
type Config struct {
	Logging  LoggingConfig `yaml:"logging"`
	Scenario Scenario      `yaml:"scenario"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// Point is a [row, col] pair.
type Point [2]int

func (p Point) Coord() gridplan.Coord { return gridplan.Coord{Row: p[0], Col: p[1]} }

// Scenario describes one grid and the query to run on it. A non-empty Layout
// takes precedence over Rows, Cols, Start, Goal and Blocked.
type Scenario struct {
	Algorithm string  `yaml:"algorithm"`
	Diagonals *bool   `yaml:"diagonals,omitempty"`
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Start     *Point  `yaml:"start,omitempty"`
	Goal      *Point  `yaml:"goal,omitempty"`
	Blocked   []Point `yaml:"blocked,omitempty"`
	Layout    string  `yaml:"layout,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present: an
// empty 14x20 grid with opposite corners as endpoints.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Scenario: Scenario{
			Algorithm: "dstar-lite",
			Rows:      14,
			Cols:      20,
			Start:     &Point{0, 0},
			Goal:      &Point{13, 19},
		},
	}
}

// fileConfig is the on-disk shape. A scenario present in the file replaces
// the default scenario as a whole so no default endpoint leaks into it.
type fileConfig struct {
	Logging  LoggingConfig `yaml:"logging"`
	Scenario *Scenario     `yaml:"scenario"`
}

// Load loads configuration from a YAML file. Logging settings missing from
// the file keep their defaults; a scenario section is taken as written, with
// only the algorithm defaulted.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			file := fileConfig{Logging: cfg.Logging}
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
			cfg.Logging = file.Logging
			if file.Scenario != nil {
				if file.Scenario.Algorithm == "" {
					file.Scenario.Algorithm = cfg.Scenario.Algorithm
				}
				cfg.Scenario = *file.Scenario
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("GRIDPLAN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if alg := os.Getenv("GRIDPLAN_ALGORITHM"); alg != "" {
		c.Scenario.Algorithm = alg
	}
}

// Validate checks the settings that do not need a built grid.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format %q", c.Logging.Format)
	}
	if _, err := gridplan.ParseAlgorithm(c.Scenario.Algorithm); err != nil {
		return err
	}
	return nil
}

// AlgorithmValue parses the configured algorithm.
func (s Scenario) AlgorithmValue() (gridplan.Algorithm, error) {
	return gridplan.ParseAlgorithm(s.Algorithm)
}

// DiagonalsEnabled reports the D* Lite connectivity, true unless disabled.
func (s Scenario) DiagonalsEnabled() bool {
	return s.Diagonals == nil || *s.Diagonals
}

// Build constructs the grid and checks the planner preconditions: start and
// goal exist, are in range, differ and are not blocked. Start and Goal cells
// are marked on the grid.
func (s Scenario) Build() (*gridplan.Grid, *gridplan.Cell, *gridplan.Cell, error) {
	if strings.TrimSpace(s.Layout) != "" {
		return buildLayout(s.Layout)
	}
	g := gridplan.NewGrid(s.Rows, s.Cols)
	for _, p := range s.Blocked {
		c, ok := g.At(p.Coord())
		if !ok {
			return nil, nil, nil, fmt.Errorf("blocked %v: %w", p, ErrOutOfRange)
		}
		c.SetState(gridplan.Blocked)
	}
	if s.Start == nil {
		return nil, nil, nil, ErrNoStart
	}
	if s.Goal == nil {
		return nil, nil, nil, ErrNoGoal
	}
	start, ok := g.At(s.Start.Coord())
	if !ok {
		return nil, nil, nil, fmt.Errorf("start %v: %w", *s.Start, ErrOutOfRange)
	}
	goal, ok := g.At(s.Goal.Coord())
	if !ok {
		return nil, nil, nil, fmt.Errorf("goal %v: %w", *s.Goal, ErrOutOfRange)
	}
	if err := markEndpoints(start, goal); err != nil {
		return nil, nil, nil, err
	}
	return g, start, goal, nil
}

func buildLayout(layout string) (*gridplan.Grid, *gridplan.Cell, *gridplan.Cell, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	cols := len(lines[0])
	for i, line := range lines {
		if len(line) != cols {
			return nil, nil, nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(line), cols, ErrBadLayout)
		}
	}

	g := gridplan.NewGrid(len(lines), cols)
	var start, goal *gridplan.Cell
	for r, line := range lines {
		for col, ch := range line {
			c, _ := g.Cell(r, col)
			switch ch {
			case '.':
			case '#':
				c.SetState(gridplan.Blocked)
			case 'S':
				if start != nil {
					return nil, nil, nil, fmt.Errorf("second start at (%d,%d): %w", r, col, ErrBadLayout)
				}
				start = c
			case 'G':
				if goal != nil {
					return nil, nil, nil, fmt.Errorf("second goal at (%d,%d): %w", r, col, ErrBadLayout)
				}
				goal = c
			default:
				return nil, nil, nil, fmt.Errorf("unexpected %q at (%d,%d): %w", ch, r, col, ErrBadLayout)
			}
		}
	}
	if start == nil {
		return nil, nil, nil, ErrNoStart
	}
	if goal == nil {
		return nil, nil, nil, ErrNoGoal
	}
	if err := markEndpoints(start, goal); err != nil {
		return nil, nil, nil, err
	}
	return g, start, goal, nil
}

func markEndpoints(start, goal *gridplan.Cell) error {
	if start == goal {
		return ErrSameEndpoints
	}
	if start.State() == gridplan.Blocked || goal.State() == gridplan.Blocked {
		return ErrBlockedEndpoint
	}
	start.SetState(gridplan.Start)
	goal.SetState(gridplan.Goal)
	return nil
}
