// Package gridgen builds random obstacle fields for demos and benchmarks.
package gridgen

import (
	"math/rand"

	"github.com/pdrpinto/gridplan"
)

// Params controls the clustered random-walk generator.
type Params struct {
	Rows, Cols int
	Clusters   int
	Steps      int
	Density    float64
}

// DefaultParams matches the web demo's defaults.
func DefaultParams(rows, cols int) Params {
	return Params{Rows: rows, Cols: cols, Clusters: 8, Steps: 200, Density: 0.25}
}

var walkDirections = [4]gridplan.Coord{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}

// Generate picks distinct start and goal cells and grows wall clusters by
// random walks that never cover either endpoint. Grids smaller than two cells
// cannot hold both endpoints and yield nil cells.
func Generate(r *rand.Rand, p Params) (*gridplan.Grid, *gridplan.Cell, *gridplan.Cell) {
	g := gridplan.NewGrid(p.Rows, p.Cols)
	if g.Len() < 2 {
		return g, nil, nil
	}
	start := randomCell(r, g)
	goal := randomCell(r, g)
	for goal == start {
		goal = randomCell(r, g)
	}
	start.SetState(gridplan.Start)
	goal.SetState(gridplan.Goal)

	for c := 0; c < p.Clusters; c++ {
		at := randomCell(r, g).Coord()
		for s := 0; s < p.Steps; s++ {
			if r.Float64() < p.Density {
				g.SetBlocked(at.Row, at.Col, true)
			}
			d := walkDirections[r.Intn(len(walkDirections))]
			if g.InBounds(at.Row+d.Row, at.Col+d.Col) {
				at = gridplan.Coord{Row: at.Row + d.Row, Col: at.Col + d.Col}
			}
		}
	}
	return g, start, goal
}

func randomCell(r *rand.Rand, g *gridplan.Grid) *gridplan.Cell {
	c, _ := g.Cell(r.Intn(g.Rows()), r.Intn(g.Cols()))
	return c
}
