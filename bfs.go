package gridplan

import (
	"go.uber.org/zap"

	"github.com/pdrpinto/gridplan/internal"
)

// RunBFS reports whether BFS found a path from start to goal. On success
// the cells along the path are marked Path.
func RunBFS(g *Grid, start, goal *Cell, options ...Option) bool {
	return BFS(g, start, goal, options...).Found
}

// BFS runs an unweighted breadth-first search over the 4-connected grid.
// Cells are marked visited when enqueued so none is queued twice.
func BFS(g *Grid, start, goal *Cell, options ...Option) Result {
	searchOptions := applyOptions(options)
	p := startProbe(searchOptions.Metrics)

	g.Reset(false, false)
	result := Result{Algorithm: AlgorithmBFS}

	start.visited = true
	queue := []*Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue[0] = nil
		queue = queue[1:]
		result.ExpandedNodes++

		if current == goal {
			path := g.tracePath(goal, start)
			internal.Reverse(path)
			result.Found = true
			result.Path = path
			result.TotalCost = g.pathCost(path)
			break
		}

		for _, neighbor := range Neighbors(g, current, false) {
			if neighbor.visited || neighbor.state == Blocked {
				continue
			}
			neighbor.visited = true
			neighbor.setParent(current)
			queue = append(queue, neighbor)
		}
	}

	p.finish(g, &result)
	searchOptions.Logger.Debug("bfs finished",
		zap.Stringer("start", start.Coord()),
		zap.Stringer("goal", goal.Coord()),
		zap.Bool("found", result.Found),
		zap.Int("expanded", result.ExpandedNodes),
		zap.Int("steps", result.Steps()),
		zap.Duration("elapsed", result.Elapsed))
	return result
}
