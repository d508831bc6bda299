package gridplan

// Grid owns a fixed rows×cols matrix of cells.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a grid with every cell Empty. Non-positive dimensions
// produce an empty grid on which every lookup is absent.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[r*cols+c] = newCell(r, c)
		}
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Len is the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col). It never panics; ok is false outside
// the grid.
func (g *Grid) Cell(row, col int) (*Cell, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	return &g.cells[row*g.cols+col], true
}

// At is Cell addressed by Coord.
func (g *Grid) At(c Coord) (*Cell, bool) {
	return g.Cell(c.Row, c.Col)
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(*Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Reset clears the search fields of every cell. Path markings always return
// to Empty; Blocked cells are cleared only when resetBlocked is set, and
// Start/Goal cells only when resetStartGoal is set.
func (g *Grid) Reset(resetBlocked, resetStartGoal bool) {
	for i := range g.cells {
		c := &g.cells[i]
		c.clearSearch()
		switch c.state {
		case Start, Goal:
			if resetStartGoal {
				c.state = Empty
			}
		case Blocked:
			if resetBlocked {
				c.state = Empty
			}
		case Path:
			c.state = Empty
		case Empty:
		}
	}
}

// SetBlocked marks or clears an obstacle. Start and Goal cells are left
// untouched, matching how the interactive editor treats them.
func (g *Grid) SetBlocked(row, col int, blocked bool) bool {
	c, ok := g.Cell(row, col)
	if !ok || c.isEndpoint() {
		return false
	}
	if blocked {
		c.state = Blocked
	} else {
		c.state = Empty
	}
	return true
}

// States returns a copy of every cell's state, indexed [row][col].
func (g *Grid) States() [][]State {
	out := make([][]State, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]State, g.cols)
		for c := 0; c < g.cols; c++ {
			out[r][c] = g.cells[r*g.cols+c].state
		}
	}
	return out
}

func (g *Grid) index(c *Cell) int { return c.row*g.cols + c.col }

func (g *Grid) parentOf(c *Cell) (*Cell, bool) {
	p, ok := c.Parent()
	if !ok {
		return nil, false
	}
	return g.At(p)
}
