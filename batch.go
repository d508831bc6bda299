package gridplan

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrSharedGrid is returned by RunBatch when two jobs reference the same
// grid. Planner calls on one grid must be serialized.
var ErrSharedGrid = errors.New("grid shared between batch jobs")

// Job is one planner call in a batch. Each job owns its grid.
type Job struct {
	Grid      *Grid
	Start     *Cell
	Goal      *Cell
	Algorithm Algorithm
}

// RunBatch runs independent jobs on a pool of workers and returns their
// results in job order. Cancelling ctx stops new jobs from starting; a job
// already running finishes normally.
func RunBatch(ctx context.Context, jobs []Job, options ...Option) ([]Result, error) {
	searchOptions := applyOptions(options)

	owners := make(map[*Grid]int, len(jobs))
	for i, job := range jobs {
		if !job.Algorithm.valid() {
			return nil, fmt.Errorf("job %d: %w: %v", i, ErrUnknownAlgorithm, job.Algorithm)
		}
		if first, seen := owners[job.Grid]; seen {
			return nil, fmt.Errorf("%w: jobs %d and %d", ErrSharedGrid, first, i)
		}
		owners[job.Grid] = i
	}

	results := make([]Result, len(jobs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, job := range jobs {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			results[i] = Search(job.Grid, job.Algorithm, job.Start, job.Goal, options...)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	searchOptions.Logger.Debug("batch finished",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", searchOptions.NumberOfWorkers))
	return results, nil
}
