package gridplan

import "math"

// StepSnapshot exposes the session state after one agent move.
type StepSnapshot struct {
	Current   Coord
	Done      bool
	Found     bool
	StepIndex int
	KM        float64
	OpenSize  int
}

// Step advances the agent by one cell along the cheapest successor. Once the
// session is done further calls return the final snapshot unchanged.
func (s *Session) Step() StepSnapshot {
	if s.done {
		return s.snapshot()
	}
	if s.start == s.goal {
		s.finish(true)
		return s.snapshot()
	}
	if math.IsInf(s.start.rhs, 1) {
		s.finish(false)
		return s.snapshot()
	}
	next, _ := s.bestSuccessor(s.start)
	if next == nil {
		s.finish(false)
		return s.snapshot()
	}

	s.steps++
	s.start = next
	s.trajectory = append(s.trajectory, next.Coord())
	if !next.isEndpoint() {
		next.state = Path
	}
	if s.changed(s.last.Coord(), s.start.Coord()) {
		s.replan()
	}
	if s.start == s.goal {
		s.finish(true)
	}
	return s.snapshot()
}

// Run steps the session to completion.
func (s *Session) Run() Result {
	return s.run()
}

func (s *Session) run() Result {
	for !s.done {
		s.Step()
	}
	return s.result()
}

func (s *Session) finish(found bool) {
	s.done = true
	s.found = found
	if found {
		s.grid.tracePath(s.origin, s.goal)
	}
}

func (s *Session) result() Result {
	result := Result{
		Algorithm:     AlgorithmDStarLite,
		Found:         s.found,
		ExpandedNodes: s.expanded,
	}
	if s.found {
		result.Path = append([]Coord(nil), s.trajectory...)
		result.TotalCost = s.grid.pathCost(result.Path)
	}
	return result
}

func (s *Session) snapshot() StepSnapshot {
	return StepSnapshot{
		Current:   s.start.Coord(),
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.steps,
		KM:        s.km,
		OpenSize:  s.open.Len(),
	}
}
