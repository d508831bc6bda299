package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridplan"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridplan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "dstar-lite", cfg.Scenario.Algorithm)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
scenario:
  algorithm: bfs
  diagonals: false
  rows: 3
  cols: 4
  start: [0, 0]
  goal: [2, 3]
  blocked:
    - [1, 1]
    - [1, 2]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Scenario.DiagonalsEnabled())
	assert.Equal(t, []Point{{1, 1}, {1, 2}}, cfg.Scenario.Blocked)

	alg, err := cfg.Scenario.AlgorithmValue()
	require.NoError(t, err)
	assert.Equal(t, gridplan.AlgorithmBFS, alg)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRIDPLAN_LOG_LEVEL", "warn")
	t.Setenv("GRIDPLAN_ALGORITHM", "bfs")

	cfg, err := Load(writeConfig(t, "scenario:\n  algorithm: dstar\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "bfs", cfg.Scenario.Algorithm)
}

func TestLoadScenarioReplacesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "scenario:\n  rows: 5\n  cols: 5\n  goal: [4, 4]\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Scenario.Start)
	assert.Equal(t, "dstar-lite", cfg.Scenario.Algorithm)
	_, _, _, err = cfg.Scenario.Build()
	assert.ErrorIs(t, err, ErrNoStart)

	cfg, err = Load(writeConfig(t, "scenario:\n  rows: 5\n  cols: 5\n  start: [1, 1]\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Scenario.Goal)
	_, _, _, err = cfg.Scenario.Build()
	assert.ErrorIs(t, err, ErrNoGoal)
}

func TestLoadWithoutScenarioKeepsDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, DefaultConfig().Scenario, cfg.Scenario)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "logging: [", "failed to parse config"},
		{"bad level", "logging:\n  level: loud\n", `invalid logging level "loud"`},
		{"bad format", "logging:\n  format: xml\n", `invalid logging format "xml"`},
		{"bad algorithm", "scenario:\n  algorithm: astar\n", "unknown algorithm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := DefaultConfig()
	want.Scenario.Blocked = []Point{{3, 4}}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBuildCoordinates(t *testing.T) {
	s := Scenario{
		Rows:    3,
		Cols:    4,
		Start:   &Point{0, 0},
		Goal:    &Point{2, 3},
		Blocked: []Point{{1, 1}},
	}
	g, start, goal, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, gridplan.Start, start.State())
	assert.Equal(t, gridplan.Goal, goal.State())
	assert.Equal(t, gridplan.Coord{Row: 2, Col: 3}, goal.Coord())

	c, ok := g.Cell(1, 1)
	require.True(t, ok)
	assert.Equal(t, gridplan.Blocked, c.State())
}

func TestBuildLayout(t *testing.T) {
	s := Scenario{Rows: 99, Layout: `
		S..#
		.#..
		...G
	`}
	g, start, goal, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, gridplan.Coord{Row: 0, Col: 0}, start.Coord())
	assert.Equal(t, gridplan.Coord{Row: 2, Col: 3}, goal.Coord())
	assert.Equal(t, []gridplan.State{gridplan.Empty, gridplan.Blocked, gridplan.Empty, gridplan.Empty}, g.States()[1])
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		want     error
	}{
		{"no start", Scenario{Rows: 2, Cols: 2, Goal: &Point{1, 1}}, ErrNoStart},
		{"no goal", Scenario{Rows: 2, Cols: 2, Start: &Point{0, 0}}, ErrNoGoal},
		{"start out of range", Scenario{Rows: 2, Cols: 2, Start: &Point{2, 0}, Goal: &Point{1, 1}}, ErrOutOfRange},
		{"blocked out of range", Scenario{Rows: 2, Cols: 2, Blocked: []Point{{-1, 0}}}, ErrOutOfRange},
		{"same cell", Scenario{Rows: 2, Cols: 2, Start: &Point{1, 1}, Goal: &Point{1, 1}}, ErrSameEndpoints},
		{"blocked goal", Scenario{Rows: 2, Cols: 2, Start: &Point{0, 0}, Goal: &Point{1, 1}, Blocked: []Point{{1, 1}}}, ErrBlockedEndpoint},
		{"ragged layout", Scenario{Layout: "S..\n.G"}, ErrBadLayout},
		{"two starts", Scenario{Layout: "S.S\n..G"}, ErrBadLayout},
		{"bad glyph", Scenario{Layout: "S.x\n..G"}, ErrBadLayout},
		{"layout without goal", Scenario{Layout: "S..\n..."}, ErrNoGoal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.scenario.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
