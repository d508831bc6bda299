package gridplan

import "math"

const (
	OrthogonalCost = 1.0
	DiagonalCost   = 1.4
)

// Enumeration order breaks ties in both planners: N, W, E, S, then NW, NE, SW, SE.
var (
	orthogonalOffsets = [4]Coord{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	diagonalOffsets   = [4]Coord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Neighbors returns the in-bounds neighbors of c in the fixed enumeration
// order. Blocked cells are included; callers filter them.
func Neighbors(g *Grid, c *Cell, diagonals bool) []*Cell {
	out := make([]*Cell, 0, 8)
	for _, d := range orthogonalOffsets {
		if n, ok := g.Cell(c.row+d.Row, c.col+d.Col); ok {
			out = append(out, n)
		}
	}
	if !diagonals {
		return out
	}
	for _, d := range diagonalOffsets {
		if n, ok := g.Cell(c.row+d.Row, c.col+d.Col); ok {
			out = append(out, n)
		}
	}
	return out
}

// EdgeCost is the cost of moving from a to the adjacent cell b.
func EdgeCost(a, b *Cell) float64 {
	if b.state == Blocked {
		return math.Inf(1)
	}
	if absInt(a.row-b.row) == 1 && absInt(a.col-b.col) == 1 {
		return DiagonalCost
	}
	return OrthogonalCost
}

// Heuristic is the Chebyshev distance between a and b.
func Heuristic(a, b *Cell) float64 {
	return float64(max(absInt(a.row-b.row), absInt(a.col-b.col)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
