// Package workerpool runs bounded concurrent work over a slice of items.
package workerpool

import (
	"context"
	"sync"
)

// Process calls process for every item using up to workerCount goroutines.
// The first error cancels the context passed to process, stops dispatching and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	workerCount = min(workerCount, max(len(items), 1))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	tasks := make(chan T)
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := process(ctx, item); err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
				}
			}
		}()
	}

dispatch:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break dispatch
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

type indexed[T any] struct {
	pos  int
	item T
}

// Collect runs fn over items with workerCount workers and returns the results in item order.
// The first error cancels the remaining work and is returned.
func Collect[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	tasks := make([]indexed[T], len(items))
	for i, item := range items {
		tasks[i] = indexed[T]{pos: i, item: item}
	}

	results := make([]R, len(items))
	err := Process(ctx, workerCount, tasks, func(ctx context.Context, t indexed[T]) error {
		res, err := fn(ctx, t.item)
		if err != nil {
			return err
		}
		results[t.pos] = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
