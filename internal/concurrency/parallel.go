// Package concurrency runs independent jobs on a bounded pool of workers.
package concurrency

import (
	"context"
	"sync"
)

// ParallelOptions configures a parallel run.
type ParallelOptions struct {
	// MaxWorkers caps the number of goroutines; values <= 0 use the default.
	MaxWorkers int
}

const defaultWorkers = 4

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() ParallelOptions {
	return ParallelOptions{MaxWorkers: defaultWorkers}
}

func (o ParallelOptions) workers(n int) int {
	w := o.MaxWorkers
	if w <= 0 {
		w = defaultWorkers
	}
	return min(w, n)
}

// ProcessParallel calls itemFunc for every item and returns the results in
// input order. Items not started because ctx was cancelled get a zero result
// and ctx.Err() in their error slot. errs is nil when every call succeeded;
// otherwise it has one entry per item, nil for the successful ones.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) (results []R, errs []error) {
	results = make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	slots := make([]error, len(items))
	failed := run(ctx, len(items), opts.workers(len(items)), func(i int) error {
		r, err := itemFunc(ctx, i, items[i])
		results[i] = r
		slots[i] = err
		return err
	}, func(i int, err error) { slots[i] = err })

	if !failed {
		return results, nil
	}
	return results, slots
}

// ForEach calls itemFunc for every item and returns the non-nil errors.
// Items not started because ctx was cancelled are skipped silently.
func ForEach[T any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) error,
) []error {
	if len(items) == 0 {
		return nil
	}

	var mu sync.Mutex
	var errs []error
	run(ctx, len(items), opts.workers(len(items)), func(i int) error {
		err := itemFunc(ctx, i, items[i])
		if err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}
		return err
	}, nil)
	return errs
}

// run feeds indexes 0..n-1 to workers goroutines. skipped, when non-nil, is
// told about every index that was not started because ctx was done. It
// reports whether any job failed or was skipped.
func run(ctx context.Context, n, workers int, job func(i int) error, skipped func(i int, err error)) bool {
	jobs := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := false

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := job(i); err != nil {
					mu.Lock()
					failed = true
					mu.Unlock()
				}
			}
		}()
	}

	next := 0
feed:
	for ; next < n; next++ {
		// check first so a cancelled context never starts a job
		if ctx.Err() != nil {
			break
		}
		select {
		case jobs <- next:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if next < n {
		failed = failed || skipped != nil
		for i := next; i < n && skipped != nil; i++ {
			skipped(i, ctx.Err())
		}
	}
	return failed
}
