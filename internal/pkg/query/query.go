package query

import (
	"context"
	"time"
)

// Result is what a caller sees for one key. An idle, disabled result means
// "nothing selected yet"; a success with an empty value means the API
// answered with nothing; an error state means the load failed.
type Result[T any] struct {
	Data       T
	State      State
	Err        error
	UpdatedAt  time.Time
	IsStale    bool
	Disabled   bool
	Superseded bool
}

func (r Result[T]) IsLoading() bool { return r.State == StateLoading }
func (r Result[T]) IsSuccess() bool { return r.State == StateSuccess }
func (r Result[T]) IsError() bool   { return r.State == StateError }
func (r Result[T]) IsIdle() bool    { return r.State == StateIdle }

func fromSnapshot[T any](s Snapshot) Result[T] {
	r := Result[T]{
		State:     s.State,
		Err:       s.Err,
		UpdatedAt: s.UpdatedAt,
		IsStale:   s.IsStale,
	}
	if v, ok := s.Data.(T); ok {
		r.Data = v
	}
	return r
}

// Query binds a key, a typed loader and a policy to a cache.
type Query[T any] struct {
	cache  *Cache
	key    Key
	load   func(ctx context.Context) (T, error)
	policy Policy
}

func New[T any](c *Cache, key Key, load func(ctx context.Context) (T, error), p Policy) *Query[T] {
	return &Query[T]{cache: c, key: key, load: load, policy: p}
}

func (q *Query[T]) Key() Key {
	return q.key
}

func (q *Query[T]) loader() Loader {
	return func(ctx context.Context) (interface{}, error) {
		return q.load(ctx)
	}
}

// Fetch resolves the query: cached when fresh, loaded otherwise.
func (q *Query[T]) Fetch(ctx context.Context) Result[T] {
	if !q.policy.Enabled() {
		return Result[T]{State: StateIdle, Disabled: true}
	}
	return fromSnapshot[T](q.cache.Fetch(ctx, q.key, q.loader(), q.policy))
}

// Refetch loads regardless of freshness.
func (q *Query[T]) Refetch(ctx context.Context) Result[T] {
	if !q.policy.Enabled() {
		return Result[T]{State: StateIdle, Disabled: true}
	}
	return fromSnapshot[T](q.cache.Refetch(ctx, q.key, q.loader(), q.policy))
}

// Peek returns the cached state without loading.
func (q *Query[T]) Peek() Result[T] {
	r := fromSnapshot[T](q.cache.Snapshot(q.key))
	r.Disabled = !q.policy.Enabled()
	return r
}
