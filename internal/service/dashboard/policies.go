package dashboard

import (
	"github.com/ougirez/forestwatch/internal/pkg/apiclient"
	"github.com/ougirez/forestwatch/internal/pkg/query"
	"time"
)

const (
	mapStaleTime             = 24 * time.Hour
	recommendationsStaleTime = time.Hour
	insightsStaleTime        = 30 * time.Minute
	templatesStaleTime       = 24 * time.Hour

	timeoutClassRetries   = 5
	recommendationRetries = 3
	insightRetries        = 2
	templateRetries       = 1
)

// retryUpTo never retries a request that was rejected locally.
func retryUpTo(n int) query.RetryFunc {
	return func(retries int, err error) bool {
		if apiclient.IsValidation(err) {
			return false
		}
		return retries < n
	}
}

// retryGeneration allows more attempts when the generation step timed out.
func retryGeneration(n int) query.RetryFunc {
	return func(retries int, err error) bool {
		switch {
		case apiclient.IsValidation(err):
			return false
		case apiclient.IsTimeoutClass(err):
			return retries < timeoutClassRetries
		default:
			return retries < n
		}
	}
}

type policies struct {
	base      time.Duration
	max       time.Duration
	staleTime time.Duration
}

func (p policies) apply(q query.Policy) query.Policy {
	q.BaseDelay = p.base
	q.MaxDelay = p.max
	return q
}

func (p policies) standard() query.Policy {
	q := query.DefaultPolicy()
	q.StaleTime = p.staleTime
	q.Retry = retryUpTo(query.DefaultRetries)
	return p.apply(q)
}

func (p policies) mapOverlay() query.Policy {
	q := query.StaticPolicy(mapStaleTime)
	q.Retry = retryUpTo(query.DefaultRetries)
	return p.apply(q)
}

func (p policies) recommendations() query.Policy {
	q := query.DefaultPolicy()
	q.StaleTime = recommendationsStaleTime
	q.Retry = retryGeneration(recommendationRetries)
	return p.apply(q)
}

func (p policies) insights() query.Policy {
	q := query.DefaultPolicy()
	q.StaleTime = insightsStaleTime
	q.Retry = retryGeneration(insightRetries)
	return p.apply(q)
}

func (p policies) templates() query.Policy {
	q := query.DefaultPolicy()
	q.StaleTime = templatesStaleTime
	q.Retry = retryUpTo(templateRetries)
	return p.apply(q)
}
