// Package settle runs a function over many inputs concurrently and keeps
// every outcome, failures included.
package settle

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

// All calls fn for every item with at most limit calls in flight (no limit
// when limit <= 0). A failure never cancels the other calls. Results are in
// input order.
func All[I, T any](ctx context.Context, items []I, limit int, fn func(ctx context.Context, item I) (T, error)) []Result[T] {
	results := make([]Result[T], len(items))

	eg := errgroup.Group{}
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, item := range items {
		i, item := i, item
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[T]{Value: v, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	return results
}

// Values returns the successful values in input order.
func Values[T any](rs []Result[T]) []T {
	out := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.OK() {
			out = append(out, r.Value)
		}
	}
	return out
}
