package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// RowPool runs a per-row function over a bounded number of goroutines.
// Every row is handed to exactly one call, so callers may write row-owned
// memory without locking.
type RowPool struct {
	numWorkers int
}

// NewRowPool creates a pool with the specified number of workers (0 = CPU count)
func NewRowPool(numWorkers int) *RowPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &RowPool{numWorkers: numWorkers}
}

// Workers returns the concurrency limit
func (rp *RowPool) Workers() int {
	return rp.numWorkers
}

// Run calls fn for rows 0..rows-1 and waits for all of them. Context
// cancellation is checked before each row starts.
func (rp *RowPool) Run(ctx context.Context, rows int, fn func(row int)) error {
	if rp.numWorkers == 1 {
		for row := 0; row < rows; row++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(row)
		}
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(rp.numWorkers))

	var acquireErr error
	for row := 0; row < rows; row++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			acquireErr = fmt.Errorf("while acquiring row worker: %w", err)
			break
		}

		row := row
		eg.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(row)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}
	return acquireErr
}
