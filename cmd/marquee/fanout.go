package main

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// fanOut runs fn for every input on a pool of at most size workers and
// returns the results in input order.
func fanOut[T any](ctx context.Context, size int, inputs []string, fn func(context.Context, string) T) ([]T, error) {
	if size < 1 {
		size = 1
	}
	if size > len(inputs) && len(inputs) > 0 {
		size = len(inputs)
	}

	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]T, len(inputs))
	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = fn(ctx, input)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}
