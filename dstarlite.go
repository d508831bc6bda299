package gridplan

import (
	"math"

	"go.uber.org/zap"
)

// RunDStarLite reports whether D* Lite moved the agent from start to goal.
// Cells the agent passes through are marked Path.
func RunDStarLite(g *Grid, start, goal *Cell, options ...Option) bool {
	return DStarLite(g, start, goal, options...).Found
}

// DStarLite plans from start to goal and drives the agent until it arrives
// or no path remains.
func DStarLite(g *Grid, start, goal *Cell, options ...Option) Result {
	searchOptions := applyOptions(options)
	p := startProbe(searchOptions.Metrics)
	s := newSession(g, start, goal, searchOptions)
	result := s.run()
	p.finish(g, &result)
	s.logger.Debug("dstar lite finished",
		zap.Stringer("start", start.Coord()),
		zap.Stringer("goal", goal.Coord()),
		zap.Bool("found", result.Found),
		zap.Int("expanded", result.ExpandedNodes),
		zap.Int("steps", result.Steps()),
		zap.Float64("km", s.km),
		zap.Duration("elapsed", result.Elapsed))
	return result
}

// Session is one D* Lite planning episode. g and rhs estimate the cost from
// a cell to the goal, so the search runs backwards from the goal while the
// agent walks forwards from the start.
type Session struct {
	grid   *Grid
	origin *Cell
	start  *Cell
	last   *Cell
	goal   *Cell
	km     float64
	open   *openList

	diagonals bool
	changed   ChangeDetector
	logger    *zap.Logger

	trajectory []Coord
	expanded   int
	steps      int
	done       bool
	found      bool
}

// NewSession resets the grid and computes the initial shortest path. The
// returned session is advanced with Step.
func NewSession(g *Grid, start, goal *Cell, options ...Option) *Session {
	return newSession(g, start, goal, applyOptions(options))
}

func newSession(g *Grid, start, goal *Cell, searchOptions Options) *Session {
	g.Reset(false, false)
	s := &Session{
		grid:       g,
		origin:     start,
		start:      start,
		last:       start,
		goal:       goal,
		open:       newOpenList(g),
		diagonals:  searchOptions.Diagonals,
		changed:    searchOptions.ChangeDetector,
		logger:     searchOptions.Logger,
		trajectory: []Coord{start.Coord()},
	}
	s.initialize()
	return s
}

func (s *Session) initialize() {
	s.goal.rhs = 0
	s.goal.key = s.calculateKey(s.goal)
	s.open.Insert(s.goal)
	s.computeShortestPath()
}

func (s *Session) Start() *Cell  { return s.start }
func (s *Session) Goal() *Cell   { return s.goal }
func (s *Session) KM() float64   { return s.km }
func (s *Session) OpenLen() int  { return s.open.Len() }
func (s *Session) Expanded() int { return s.expanded }

func (s *Session) calculateKey(u *Cell) Key {
	m := math.Min(u.g, u.rhs)
	return Key{K1: m + Heuristic(s.start, u) + s.km, K2: m}
}

func (s *Session) neighbors(u *Cell) []*Cell {
	return Neighbors(s.grid, u, s.diagonals)
}

// bestSuccessor returns the neighbor minimizing edge cost plus g. The first
// neighbor in enumeration order wins ties; nil means every option is
// unreachable.
func (s *Session) bestSuccessor(u *Cell) (*Cell, float64) {
	var best *Cell
	bestCost := math.Inf(1)
	for _, n := range s.neighbors(u) {
		if cost := EdgeCost(u, n) + n.g; cost < bestCost {
			best, bestCost = n, cost
		}
	}
	return best, bestCost
}

// updateNode recomputes rhs(u) and requeues u when it is inconsistent. The
// open list entry is always removed first since its key is stale.
func (s *Session) updateNode(u *Cell) {
	if u != s.goal {
		best, cost := s.bestSuccessor(u)
		u.rhs = cost
		u.setParent(best)
	}
	s.open.Remove(u)
	if !u.consistent() {
		u.key = s.calculateKey(u)
		s.open.Insert(u)
	}
}

func (s *Session) computeShortestPath() {
	for s.open.Len() > 0 {
		top, _ := s.open.Peek()
		if !top.key.Less(s.calculateKey(s.start)) && s.start.consistent() {
			return
		}
		u, _ := s.open.PopMin()
		s.expanded++
		if u.g > u.rhs {
			u.g = u.rhs
		} else {
			u.g = math.Inf(1)
			s.updateNode(u)
		}
		for _, n := range s.neighbors(u) {
			s.updateNode(n)
		}
	}
}

// replan folds the distance travelled since the last replan into km so queued
// keys stay comparable, then repairs the shortest path from the new start.
func (s *Session) replan() {
	s.km += Heuristic(s.last, s.start)
	s.last = s.start
	s.updateNode(s.start)
	s.computeShortestPath()
	s.logger.Debug("dstar lite replanned",
		zap.Stringer("at", s.start.Coord()),
		zap.Float64("km", s.km),
		zap.Int("open", s.open.Len()))
}
