// Package gridplan provides shortest-path planners over a 2D occupancy grid.
//
// It exposes two planners that share one grid model:
//
//   - BFS: unweighted breadth-first search over the 4-connected grid.
//   - DStarLite: incremental, heuristic replanning search over the
//     8-connected grid, driven either to completion or one agent step at a
//     time through a Session.
//
// Planners mutate the cells of the Grid they are given in place; callers read
// the results back through the Cell accessors. A Grid must not be used by more
// than one planner call at a time. RunBatch runs independent grids
// concurrently.
package gridplan
