package gridplan

import "github.com/pdrpinto/gridplan/internal"

// tracePath walks parent links from `from` until `to` is reached and marks
// every intermediate cell that is not an endpoint as Path. The chain is
// returned in walk order.
func (g *Grid) tracePath(from, to *Cell) []Coord {
	chain := internal.WalkParents(from, to, g.parentOf, g.Len())
	coords := make([]Coord, 0, len(chain))
	for i, c := range chain {
		if i > 0 && c != to && !c.isEndpoint() {
			c.state = Path
		}
		coords = append(coords, c.Coord())
	}
	return coords
}

// pathCost sums edge costs along consecutive coordinates.
func (g *Grid) pathCost(path []Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		a, _ := g.At(path[i-1])
		b, _ := g.At(path[i])
		total += EdgeCost(a, b)
	}
	return total
}
