package dashboard

import (
	"context"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/query"
)

func (s *Service) GlobalLossTrend(ctx context.Context) query.Result[[]domain.TimeSeriesPoint] {
	load := func(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
		return s.global.LossTrend(ctx), nil
	}
	return query.New(s.cache, query.NewKey(keyGlobalLossTrend), load, s.pol.standard()).Fetch(ctx)
}

func (s *Service) GlobalDrivers(ctx context.Context) query.Result[*domain.GlobalDrivers] {
	return query.New(s.cache, query.NewKey(keyGlobalDrivers), s.global.Drivers, s.pol.standard()).Fetch(ctx)
}

func (s *Service) TopByTotalLoss(ctx context.Context, n int) query.Result[[]domain.CountryTotal] {
	load := func(ctx context.Context) ([]domain.CountryTotal, error) {
		return s.global.TopByTotalLoss(ctx, n)
	}
	return query.New(s.cache, query.NewKey(keyTopTotalLoss, n), load, s.pol.standard()).Fetch(ctx)
}

func (s *Service) TopByPrimaryLoss(ctx context.Context) query.Result[[]domain.CountryPrimaryLoss] {
	return query.New(s.cache, query.NewKey(keyTopPrimaryLoss), s.global.TopByPrimaryLoss, s.pol.standard()).Fetch(ctx)
}
