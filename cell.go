package gridplan

import (
	"fmt"
	"math"
)

// State is the occupancy or marking of a cell.
type State uint8

const (
	Empty State = iota
	Blocked
	Start
	Goal
	Path
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

var noParent = Coord{Row: -1, Col: -1}

// Key is the two-component D* Lite priority, ordered lexicographically.
type Key struct {
	K1, K2 float64
}

// InfiniteKey is the key of a cell that has never been queued.
var InfiniteKey = Key{K1: math.Inf(1), K2: math.Inf(1)}

// Less reports whether k orders strictly before other.
func (k Key) Less(other Key) bool {
	if k.K1 != other.K1 {
		return k.K1 < other.K1
	}
	return k.K2 < other.K2
}

// Compare returns -1, 0 or +1.
func (k Key) Compare(other Key) int {
	switch {
	case k.Less(other):
		return -1
	case other.Less(k):
		return 1
	default:
		return 0
	}
}

// Cell is the per-position search record. Cells are owned by their Grid.
type Cell struct {
	row, col int
	state    State
	visited  bool
	parent   Coord
	g, rhs   float64
	key      Key

	// position in the open list heap, -1 when absent
	openIndex int
}

func newCell(row, col int) Cell {
	c := Cell{row: row, col: col, state: Empty}
	c.clearSearch()
	return c
}

func (c *Cell) clearSearch() {
	c.visited = false
	c.parent = noParent
	c.g = math.Inf(1)
	c.rhs = math.Inf(1)
	c.key = InfiniteKey
	c.openIndex = -1
}

func (c *Cell) Row() int         { return c.row }
func (c *Cell) Col() int         { return c.col }
func (c *Cell) Coord() Coord     { return Coord{Row: c.row, Col: c.col} }
func (c *Cell) State() State     { return c.state }
func (c *Cell) Visited() bool    { return c.visited }
func (c *Cell) G() float64       { return c.g }
func (c *Cell) RHS() float64     { return c.rhs }
func (c *Cell) Key() Key         { return c.key }
func (c *Cell) SetState(s State) { c.state = s }

// Parent returns the coordinate of the cell's search parent, if any.
func (c *Cell) Parent() (Coord, bool) {
	if c.parent == noParent {
		return Coord{}, false
	}
	return c.parent, true
}

func (c *Cell) setParent(p *Cell) {
	if p == nil {
		c.parent = noParent
		return
	}
	c.parent = p.Coord()
}

func (c *Cell) consistent() bool { return c.g == c.rhs }

func (c *Cell) isEndpoint() bool { return c.state == Start || c.state == Goal }
