package gridplan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBFSOpenGrid(t *testing.T) {
	g := NewGrid(5, 5)
	start, goal := endpoints(t, g, Coord{0, 0}, Coord{0, 4})

	result := BFS(g, start, goal)
	require.True(t, result.Found)
	assert.Equal(t, AlgorithmBFS, result.Algorithm)
	assert.Equal(t, 4, result.Steps())
	assert.Equal(t, 4.0, result.TotalCost)
	assert.Equal(t, []Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}, result.Path)
	assert.Equal(t, []Coord{{0, 1}, {0, 2}, {0, 3}}, cellsIn(g, Path))
	assert.Equal(t, Start, start.State())
	assert.Equal(t, Goal, goal.State())
}

func TestBFSTieBreakFollowsNeighborOrder(t *testing.T) {
	g := NewGrid(3, 3)
	start, goal := endpoints(t, g, Coord{0, 0}, Coord{1, 1})

	result := BFS(g, start, goal)
	require.True(t, result.Found)
	// east is enqueued before south
	assert.Equal(t, []Coord{{0, 0}, {0, 1}, {1, 1}}, result.Path)
}

func TestBFSDetour(t *testing.T) {
	g := NewGrid(3, 3)
	start, goal := endpoints(t, g, Coord{0, 0}, Coord{0, 2})
	block(t, g, Coord{0, 1}, Coord{1, 1})

	require.True(t, RunBFS(g, start, goal))
	want := [][]State{
		{Start, Blocked, Goal},
		{Path, Blocked, Path},
		{Path, Path, Path},
	}
	if diff := cmp.Diff(want, g.States()); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestBFSEnclosedGoal(t *testing.T) {
	g := NewGrid(5, 5)
	start, goal := endpoints(t, g, Coord{0, 0}, Coord{2, 2})
	block(t, g, ring(Coord{2, 2})...)

	result := BFS(g, start, goal)
	assert.False(t, result.Found)
	assert.Empty(t, result.Path)
	assert.Empty(t, cellsIn(g, Path))
	assert.Equal(t, 16, result.ExpandedNodes, "every reachable cell is dequeued once")
}

func TestBFSNeverDiagonal(t *testing.T) {
	g := NewGrid(4, 4)
	start, goal := endpoints(t, g, Coord{0, 0}, Coord{3, 3})

	result := BFS(g, start, goal)
	require.True(t, result.Found)
	assert.Equal(t, 6, result.Steps())
	for i := 1; i < len(result.Path); i++ {
		a, b := result.Path[i-1], result.Path[i]
		assert.Equal(t, 1, absInt(a.Row-b.Row)+absInt(a.Col-b.Col), "move %v -> %v", a, b)
	}
}

func TestBFSRerunClearsStaleState(t *testing.T) {
	setup := func() (*Grid, *Cell, *Cell) {
		g := NewGrid(5, 5)
		start, goal := endpoints(t, g, Coord{0, 0}, Coord{0, 4})
		return g, start, goal
	}

	g, start, goal := setup()
	require.True(t, RunBFS(g, start, goal))
	block(t, g, Coord{0, 2}, Coord{1, 2})
	require.True(t, RunBFS(g, start, goal))

	fresh, freshStart, freshGoal := setup()
	block(t, fresh, Coord{0, 2}, Coord{1, 2})
	require.True(t, RunBFS(fresh, freshStart, freshGoal))

	if diff := cmp.Diff(fresh.States(), g.States()); diff != "" {
		t.Errorf("rerun differs from fresh run (-fresh +rerun):\n%s", diff)
	}
	if diff := cmp.Diff(records(fresh), records(g)); diff != "" {
		t.Errorf("search fields differ (-fresh +rerun):\n%s", diff)
	}
}

func TestBFSReportsMetrics(t *testing.T) {
	g := NewGrid(3, 6)
	start, goal := endpoints(t, g, Coord{0, 0}, Coord{2, 5})

	var got []RunStats
	sink := MetricsFunc(func(s RunStats) { got = append(got, s) })
	require.True(t, RunBFS(g, start, goal, WithMetricsSink(sink)))

	require.Len(t, got, 1)
	assert.Equal(t, AlgorithmBFS, got[0].Algorithm)
	assert.True(t, got[0].Found)
	assert.Equal(t, 7, got[0].PathLength)
	assert.Equal(t, 3, got[0].Rows)
	assert.Equal(t, 6, got[0].Cols)
	assert.Positive(t, got[0].ExpandedNodes)
}
