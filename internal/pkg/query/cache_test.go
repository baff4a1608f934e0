package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func fastPolicy() Policy {
	p := DefaultPolicy()
	p.BaseDelay = time.Millisecond
	p.MaxDelay = 4 * time.Millisecond
	return p
}

func countingLoader(calls *int32, val string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		atomic.AddInt32(calls, 1)
		return val, nil
	}
}

func TestFetch_ServesFreshFromCache(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(WithClock(clock.Now))
	var calls int32

	p := fastPolicy()
	p.StaleTime = time.Minute
	q := New(c, NewKey("summary"), countingLoader(&calls, "v1"), p)

	for i := 0; i < 3; i++ {
		res := q.Fetch(context.Background())
		if !res.IsSuccess() || res.Data != "v1" {
			t.Fatalf("fetch %d: %+v", i, res)
		}
	}
	if calls != 1 {
		t.Fatalf("loads: got %d, want 1", calls)
	}

	clock.Advance(2 * time.Minute)
	if res := q.Peek(); !res.IsStale {
		t.Fatal("entry should be stale after the freshness window")
	}
	q.Fetch(context.Background())
	if calls != 2 {
		t.Fatalf("loads after stale access: got %d, want 2", calls)
	}
}

func TestFetch_StaticPolicyIgnoresFocusReconnectAndMount(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(WithClock(clock.Now))
	var calls int32

	p := StaticPolicy(24 * time.Hour)
	q := New(c, NewKey("map-data", 2020), countingLoader(&calls, "cells"), p)

	q.Fetch(context.Background())
	clock.Advance(time.Hour)

	if n := c.Notify(context.Background(), EventFocus); n != 0 {
		t.Fatalf("focus refetched %d entries", n)
	}
	if n := c.Notify(context.Background(), EventReconnect); n != 0 {
		t.Fatalf("reconnect refetched %d entries", n)
	}
	New(c, NewKey("map-data", 2020), countingLoader(&calls, "cells"), p).Fetch(context.Background())

	if calls != 1 {
		t.Fatalf("loads: got %d, want 1", calls)
	}
}

func TestFetch_StaticPolicyReloadsAfterTTL(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(WithClock(clock.Now))
	var calls int32

	p := StaticPolicy(24 * time.Hour)
	q := New(c, NewKey("map-data", 2021), countingLoader(&calls, "cells"), p)
	q.Fetch(context.Background())

	for i := 0; i < 3; i++ {
		clock.Advance(20 * time.Hour)
		q.Fetch(context.Background())
		c.Sweep()
	}

	// accesses at 20h, 40h and 60h: the 40h one is past the ttl
	if calls != 2 {
		t.Fatalf("loads: got %d, want 2", calls)
	}
	if res := q.Peek(); res.IsStale {
		t.Fatalf("entry should be fresh after the reload: %+v", res)
	}
}

func TestNotify_RefetchesStaleEntries(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(WithClock(clock.Now))
	var calls int32

	p := fastPolicy()
	p.StaleTime = 0
	New(c, NewKey("countries"), countingLoader(&calls, "list"), p).Fetch(context.Background())

	if n := c.Notify(context.Background(), EventFocus); n != 1 {
		t.Fatalf("focus refetched %d entries, want 1", n)
	}
	if calls != 2 {
		t.Fatalf("loads: got %d, want 2", calls)
	}
}

func TestFetch_RetriesThenSurfacesError(t *testing.T) {
	c := NewCache()
	boom := errors.New("boom")
	var calls int32

	p := fastPolicy()
	p.Retry = RetryUpTo(2)
	q := New(c, NewKey("drivers", "Peru"), func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", boom
	}, p)

	res := q.Fetch(context.Background())
	if !res.IsError() || !errors.Is(res.Err, boom) {
		t.Fatalf("result: %+v", res)
	}
	if calls != 3 {
		t.Fatalf("attempts: got %d, want 3", calls)
	}
	if snap := c.Snapshot(q.Key()); snap.State != StateError {
		t.Fatalf("state: got %s", snap.State)
	}
}

func TestFetch_RetryRecovers(t *testing.T) {
	c := NewCache()
	var calls int32

	q := New(c, NewKey("emissions", "Chad"), func(context.Context) (string, error) {
		if atomic.AddInt32(&calls, 1) < 3 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	}, fastPolicy())

	res := q.Fetch(context.Background())
	if !res.IsSuccess() || res.Data != "ok" {
		t.Fatalf("result: %+v", res)
	}
}

func TestFetch_RetryPredicateSeesError(t *testing.T) {
	c := NewCache()
	slow := errors.New("slow")
	var calls int32

	p := fastPolicy()
	p.Retry = func(retries int, err error) bool {
		if errors.Is(err, slow) {
			return retries < 5
		}
		return retries < 1
	}
	q := New(c, NewKey("recommendations"), func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "", slow
	}, p)

	q.Fetch(context.Background())
	if calls != 6 {
		t.Fatalf("attempts: got %d, want 6", calls)
	}
}

func TestFetch_SharesInFlightLoad(t *testing.T) {
	c := NewCache()
	var calls int32
	release := make(chan struct{})
	started := make(chan struct{}, 1)

	load := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		started <- struct{}{}
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]Result[string], 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = New(c, NewKey("summary"), load, fastPolicy()).Fetch(context.Background())
	}()
	<-started

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1] = New(c, NewKey("summary"), load, fastPolicy()).Fetch(context.Background())
	}()

	waitFor(t, func() bool {
		c.mu.RLock()
		defer c.mu.RUnlock()
		e := c.entries[NewKey("summary").id()]
		return e != nil && e.flight != nil && e.flight.waiters == 2
	})
	if snap := c.Snapshot(NewKey("summary")); snap.State != StateLoading {
		t.Fatalf("state while loading: %s", snap.State)
	}
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("loads: got %d, want 1", calls)
	}
	for i, r := range results {
		if r.Data != "shared" {
			t.Fatalf("result %d: %+v", i, r)
		}
	}
}

func TestRefetch_NewerLoadWins(t *testing.T) {
	c := NewCache()
	key := NewKey("loss-trend", "Brazil")
	releaseOld := make(chan struct{})
	oldStarted := make(chan struct{})

	oldLoad := func(context.Context) (string, error) {
		close(oldStarted)
		<-releaseOld
		return "old", nil
	}
	newLoad := func(context.Context) (string, error) {
		return "new", nil
	}

	done := make(chan Result[string])
	go func() {
		done <- New(c, key, oldLoad, fastPolicy()).Fetch(context.Background())
	}()
	<-oldStarted

	if res := New(c, key, newLoad, fastPolicy()).Refetch(context.Background()); res.Data != "new" {
		t.Fatalf("refetch: %+v", res)
	}
	close(releaseOld)
	if res := <-done; res.Data != "old" {
		t.Fatalf("old caller should still get its own answer: %+v", res)
	}

	if snap := c.Snapshot(key); snap.Data != "new" || snap.State != StateSuccess {
		t.Fatalf("superseded load overwrote the cache: %+v", snap)
	}
}

func TestInvalidate_ByPrefix(t *testing.T) {
	c := NewCache()
	var brazil, peru int32

	p := fastPolicy()
	p.StaleTime = time.Hour
	qb := New(c, NewKey("recommendations", "Brazil", "policy_governance"), countingLoader(&brazil, "b"), p)
	qp := New(c, NewKey("recommendations", "Peru", "policy_governance"), countingLoader(&peru, "p"), p)
	qb.Fetch(context.Background())
	qp.Fetch(context.Background())

	if n := c.Invalidate(NewKey("recommendations", "Brazil")); n != 1 {
		t.Fatalf("invalidated %d entries, want 1", n)
	}
	qb.Fetch(context.Background())
	qp.Fetch(context.Background())

	if brazil != 2 || peru != 1 {
		t.Fatalf("loads: brazil=%d peru=%d", brazil, peru)
	}

	if n := c.Invalidate(NewKey("recommendations")); n != 2 {
		t.Fatalf("invalidated %d entries, want 2", n)
	}
}

func TestSweep_DropsUnusedEntries(t *testing.T) {
	clock := newFakeClock()
	c := NewCache(WithClock(clock.Now))
	var calls int32

	p := fastPolicy()
	p.GCTime = time.Minute
	New(c, NewKey("summary"), countingLoader(&calls, "s"), p).Fetch(context.Background())

	if n := c.Sweep(); n != 0 {
		t.Fatalf("swept %d fresh entries", n)
	}
	clock.Advance(2 * time.Minute)
	if n := c.Sweep(); n != 1 {
		t.Fatalf("swept %d entries, want 1", n)
	}
	if c.Len() != 0 {
		t.Fatalf("len: %d", c.Len())
	}
}

func TestFetch_DisabledStaysIdle(t *testing.T) {
	c := NewCache()
	var calls int32

	q := New(c, NewKey("prediction", "", 0), countingLoader(&calls, "x"), fastPolicy().EnabledIf(false))
	res := q.Fetch(context.Background())
	if !res.IsIdle() || !res.Disabled {
		t.Fatalf("result: %+v", res)
	}
	if calls != 0 {
		t.Fatalf("disabled query loaded %d times", calls)
	}
}

func TestKey(t *testing.T) {
	year := 2021
	k := NewKey("drivers", "Brazil", &year, []string{"a", "b"}, nil)
	if got := k.String(); got != "drivers/Brazil/2021/a,b/" {
		t.Fatalf("String: %q", got)
	}
	if !k.HasPrefix(NewKey("drivers", "Brazil")) {
		t.Fatal("expected prefix match")
	}
	if k.HasPrefix(NewKey("drivers", "Peru")) {
		t.Fatal("unexpected prefix match")
	}
	if NewKey("x", struct{ A int }{1}).String() != `x/{"A":1}` {
		t.Fatalf("struct param: %q", NewKey("x", struct{ A int }{1}).String())
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}
