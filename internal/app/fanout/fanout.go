// Package fanout runs one function over many inputs with a fixed number of
// concurrent workers. It backs the multi-group reads of the application
// layer, where each group is loaded inside its own serialized scope.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one input: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item with at most maxWorkers calls in flight and
// returns results indexed like items. A maxWorkers below one is treated as
// one.
//
// Items still waiting for a worker when ctx is done get ctx.Err() and fn is
// not called for them. Calls already in flight run to completion.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	slots := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup
	for i := range items {
		wg.Go(func() {
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}
			defer func() { <-slots }()

			v, err := fn(ctx, items[i])
			results[i] = Result[R]{Value: v, Err: err}
		})
	}
	wg.Wait()

	return results
}
