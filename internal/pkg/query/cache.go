// Package query is a keyed result cache with per-resource freshness and
// retry policies, modelled on how the dashboard consumes the data API.
//
// A Cache is process-wide and shared by every caller. Each key moves through
// idle -> loading -> success|error. Concurrent loads of one key are shared,
// a load abandoned by all of its callers is discarded, and a load that was
// superseded by a refetch or an invalidation never overwrites newer state.
package query

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Loader produces the value for one key.
type Loader func(ctx context.Context) (interface{}, error)

// Snapshot is an untyped view of an entry.
type Snapshot struct {
	Data      interface{}
	State     State
	Err       error
	UpdatedAt time.Time
	IsStale   bool
}

type flight struct {
	done     chan struct{}
	cancel   context.CancelFunc
	waiters  int
	dropped  bool
	prev     State
	prevData interface{}
	val      interface{}
	err      error
	at       time.Time
}

type entry struct {
	key         Key
	state       State
	data        interface{}
	err         error
	updatedAt   time.Time
	accessedAt  time.Time
	invalidated bool
	policy      Policy
	load        Loader
	flight      *flight
	observers   int
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     func() time.Time
}

type CacheOption func(*Cache)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Start sweeps expired entries every interval until ctx is done.
func (c *Cache) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := c.Sweep(); n > 0 {
					logger.Debugf(ctx, "query cache: swept %d entries", n)
				}
			}
		}
	}()
}

// Snapshot returns the current state of key without blocking or loading.
func (c *Cache) Snapshot(key Key) Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key.id()]
	if !ok {
		return Snapshot{State: StateIdle}
	}
	return c.snapshotLocked(e)
}

func (c *Cache) snapshotLocked(e *entry) Snapshot {
	return Snapshot{
		Data:      e.data,
		State:     e.state,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
		IsStale:   c.staleLocked(e),
	}
}

func (c *Cache) staleLocked(e *entry) bool {
	if e.invalidated || e.updatedAt.IsZero() {
		return true
	}
	return c.now().Sub(e.updatedAt) >= e.policy.StaleTime
}

// Len is the number of entries currently held.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Fetch returns the cached value for key when it is fresh and loads it
// otherwise.
func (c *Cache) Fetch(ctx context.Context, key Key, load Loader, p Policy) Snapshot {
	return c.fetch(ctx, key, load, p, false)
}

// Refetch loads key even when the cached value is fresh.
func (c *Cache) Refetch(ctx context.Context, key Key, load Loader, p Policy) Snapshot {
	return c.fetch(ctx, key, load, p, true)
}

func (c *Cache) fetch(ctx context.Context, key Key, load Loader, p Policy, force bool) Snapshot {
	c.mu.Lock()
	e := c.entryLocked(key)
	e.policy = p
	e.load = load
	e.accessedAt = c.now()

	if !force && e.state == StateSuccess && !c.staleLocked(e) {
		snap := c.snapshotLocked(e)
		c.mu.Unlock()
		return snap
	}

	// A dropped flight is about to be discarded; joining it would lose the result.
	f := e.flight
	if f == nil || f.dropped || force {
		f = c.startLocked(ctx, e)
	}
	f.waiters++
	c.mu.Unlock()

	return c.wait(ctx, f)
}

func (c *Cache) entryLocked(key Key) *entry {
	id := key.id()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: key, state: StateIdle}
		c.entries[id] = e
	}
	return e
}

func (c *Cache) startLocked(ctx context.Context, e *entry) *flight {
	// The load outlives any single caller; it is cancelled once all of them leave.
	lctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f := &flight{
		done:     make(chan struct{}),
		cancel:   cancel,
		prev:     e.state,
		prevData: e.data,
	}
	if f.prev == StateLoading {
		f.prev = StateIdle
		if !e.updatedAt.IsZero() {
			f.prev = StateSuccess
		}
	}
	e.flight = f
	e.state = StateLoading

	logger.Debugf(ctx, "query %s: loading", e.key)
	go c.run(lctx, e, f, e.load, e.policy)
	return f
}

func (c *Cache) run(ctx context.Context, e *entry, f *flight, load Loader, p Policy) {
	val, err := retry(ctx, e.key, load, p)
	f.cancel()

	c.mu.Lock()
	defer c.mu.Unlock()

	f.val, f.err, f.at = val, err, c.now()

	current := c.entries[e.key.id()] == e && e.flight == f
	if current {
		e.flight = nil
		switch {
		case f.dropped:
			e.state = f.prev
		case err != nil:
			e.state = StateError
			e.err = err
			logger.Errorf(ctx, "query %s: %v", e.key, err)
		default:
			e.state = StateSuccess
			e.data = val
			e.err = nil
			e.updatedAt = f.at
			e.invalidated = false
		}
	}

	close(f.done)
}

func (c *Cache) wait(ctx context.Context, f *flight) Snapshot {
	select {
	case <-f.done:
		if f.err != nil {
			return Snapshot{Data: f.prevData, State: StateError, Err: f.err}
		}
		return Snapshot{Data: f.val, State: StateSuccess, UpdatedAt: f.at}
	case <-ctx.Done():
		c.mu.Lock()
		f.waiters--
		if f.waiters == 0 {
			f.dropped = true
			f.cancel()
		}
		c.mu.Unlock()
		return Snapshot{Data: f.prevData, State: StateLoading, Err: ctx.Err()}
	}
}

func retry(ctx context.Context, key Key, load Loader, p Policy) (interface{}, error) {
	var (
		val     interface{}
		retries int
	)

	op := func() error {
		v, err := load(ctx)
		if err == nil {
			val = v
			return nil
		}
		if ctx.Err() != nil || p.Retry == nil || !p.Retry(retries, err) {
			return backoff.Permanent(err)
		}
		retries++
		return err
	}

	notify := func(err error, d time.Duration) {
		logger.Warnf(ctx, "query %s: retry %d in %s: %v", key, retries, d, err)
	}

	err := backoff.RetryNotify(op, backoff.WithContext(p.backOff(), ctx), notify)
	return val, err
}

// Invalidate marks every entry under prefix stale, detaching in-flight loads
// so their results are not committed. It returns the number of entries touched.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.invalidated = true
		if e.flight != nil {
			e.state = e.flight.prev
			e.flight = nil
		}
		n++
	}
	return n
}

// Remove drops every entry under prefix.
func (c *Cache) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for id, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, id)
			n++
		}
	}
	return n
}

// Sweep drops entries that are idle, unobserved and unused for longer than
// their GC time.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := 0
	for id, e := range c.entries {
		if e.flight != nil || e.observers > 0 {
			continue
		}
		if now.Sub(e.accessedAt) >= e.policy.GCTime {
			delete(c.entries, id)
			n++
		}
	}
	return n
}

// Notify refetches every stale or failed entry whose policy asks for it on ev
// and waits for those loads. It returns how many loads were started.
func (c *Cache) Notify(ctx context.Context, ev Event) int {
	type job struct {
		key  Key
		load Loader
		p    Policy
	}

	c.mu.RLock()
	jobs := make([]job, 0)
	for _, e := range c.entries {
		if e.load == nil || !e.policy.Enabled() || !e.policy.refetchOn(ev) {
			continue
		}
		if e.state == StateError || (e.state == StateSuccess && c.staleLocked(e)) {
			jobs = append(jobs, job{key: e.key, load: e.load, p: e.policy})
		}
	}
	c.mu.RUnlock()

	eg, egCtx := errgroup.WithContext(ctx)
	for _, j := range jobs {
		j := j
		eg.Go(func() error {
			c.Refetch(egCtx, j.key, j.load, j.p)
			return nil
		})
	}
	_ = eg.Wait()

	if len(jobs) > 0 {
		logger.Infof(ctx, "query cache: %s refetched %d entries", ev, len(jobs))
	}
	return len(jobs)
}

func (c *Cache) observe(key Key, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	e.observers += delta
	if e.observers < 0 {
		e.observers = 0
	}
	e.accessedAt = c.now()
}
