package query

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultStaleTime = time.Minute
	DefaultGCTime    = 5 * time.Minute
	DefaultRetries   = 3
	DefaultBaseDelay = time.Second
	DefaultMaxDelay  = 30 * time.Second
)

// RetryFunc decides whether to try again after a failure. retries is the
// number of retries already made for this load, so RetryUpTo(3) allows
// four attempts in total.
type RetryFunc func(retries int, err error) bool

func RetryUpTo(n int) RetryFunc {
	return func(retries int, _ error) bool {
		return retries < n
	}
}

// Policy is the freshness and retry configuration of one resource.
type Policy struct {
	// StaleTime is the freshness window: younger results are served from cache.
	StaleTime time.Duration
	// GCTime is how long an unused entry survives before Sweep drops it.
	GCTime time.Duration

	Retry     RetryFunc
	BaseDelay time.Duration
	MaxDelay  time.Duration

	RefetchOnFocus     bool
	RefetchOnReconnect bool

	disabled bool
}

func DefaultPolicy() Policy {
	return Policy{
		StaleTime:          DefaultStaleTime,
		GCTime:             DefaultGCTime,
		Retry:              RetryUpTo(DefaultRetries),
		BaseDelay:          DefaultBaseDelay,
		MaxDelay:           DefaultMaxDelay,
		RefetchOnFocus:     true,
		RefetchOnReconnect: true,
	}
}

// StaticPolicy is for data that changes at most yearly: it is served from
// cache for ttl and never revalidated by focus or reconnect. The first access
// after ttl loads it again.
func StaticPolicy(ttl time.Duration) Policy {
	p := DefaultPolicy()
	p.StaleTime = ttl
	p.GCTime = ttl
	p.RefetchOnFocus = false
	p.RefetchOnReconnect = false
	return p
}

// EnabledIf returns a copy that stays idle, without any load, while cond is false.
func (p Policy) EnabledIf(cond bool) Policy {
	p.disabled = !cond
	return p
}

func (p Policy) Enabled() bool {
	return !p.disabled
}

func (p Policy) refetchOn(ev Event) bool {
	switch ev {
	case EventFocus:
		return p.RefetchOnFocus
	case EventReconnect:
		return p.RefetchOnReconnect
	default:
		return false
	}
}

// backOff yields min(BaseDelay*2^n, MaxDelay) for the n-th retry.
func (p Policy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = p.MaxDelay
	b.MaxElapsedTime = 0
	if b.InitialInterval <= 0 {
		b.InitialInterval = DefaultBaseDelay
	}
	if b.MaxInterval <= 0 {
		b.MaxInterval = DefaultMaxDelay
	}
	b.Reset()
	return b
}

type Event int

const (
	EventFocus Event = iota
	EventReconnect
)

func (e Event) String() string {
	switch e {
	case EventFocus:
		return "focus"
	case EventReconnect:
		return "reconnect"
	default:
		return "unknown"
	}
}
