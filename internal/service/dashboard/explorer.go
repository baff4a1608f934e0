package dashboard

import (
	"context"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/query"
)

// Explorer follows the country picked in the country explorer. Picking a new
// country abandons the load of the previous one.
type Explorer struct {
	s     *Service
	trend *query.Observer[[]domain.LossTrendPoint]
}

func (s *Service) NewExplorer() *Explorer {
	return &Explorer{
		s:     s,
		trend: query.NewObserver[[]domain.LossTrendPoint](s.cache, s.pol.standard()),
	}
}

func (e *Explorer) Select(ctx context.Context, country string) query.Result[[]domain.LossTrendPoint] {
	load := func(ctx context.Context) ([]domain.LossTrendPoint, error) {
		return e.s.forest.LossTrend(ctx, country)
	}
	return e.trend.Select(ctx, query.NewKey(keyLossTrend, country), load)
}

// Current is the loss trend of the last country whose load completed.
func (e *Explorer) Current() query.Result[[]domain.LossTrendPoint] {
	return e.trend.Current()
}

func (e *Explorer) Close() {
	e.trend.Close()
}
