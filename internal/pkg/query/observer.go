package query

import (
	"context"
	"sync"
)

// Observer follows one changing selection, such as the country picked in a
// dropdown. Selecting a new key cancels the load of the previous one, so a
// slow answer for an abandoned selection is never committed to the cache.
type Observer[T any] struct {
	cache  *Cache
	policy Policy

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	key    Key
	last   Result[T]
}

func NewObserver[T any](c *Cache, p Policy) *Observer[T] {
	return &Observer[T]{cache: c, policy: p}
}

// Select switches the observer to key and resolves it. The returned result
// is marked Superseded when another Select happened before it finished.
func (o *Observer[T]) Select(ctx context.Context, key Key, load func(ctx context.Context) (T, error)) Result[T] {
	o.mu.Lock()
	o.gen++
	gen := o.gen
	if o.cancel != nil {
		o.cancel()
	}
	if len(o.key.parts) > 0 {
		o.cache.observe(o.key, -1)
	}
	sctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.key = key
	o.cache.observe(key, 1)
	o.mu.Unlock()

	res := New(o.cache, key, load, o.policy).Fetch(sctx)

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen {
		res.Superseded = true
		return res
	}
	cancel()
	o.cancel = nil
	o.last = res
	return res
}

// Current is the result of the latest completed selection.
func (o *Observer[T]) Current() Result[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

func (o *Observer[T]) Key() Key {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.key
}

// Close cancels any pending load and releases the observed key for GC.
func (o *Observer[T]) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	if len(o.key.parts) > 0 {
		o.cache.observe(o.key, -1)
		o.key = Key{}
	}
	o.gen++
}
