// Package global derives world-level figures by fanning out per-country
// requests. A country whose request fails contributes nothing, and a failed
// country listing yields an empty figure; neither fails the aggregate.
package global

import (
	"context"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/pkg/settle"
	"github.com/shopspring/decimal"
	"math"
	"sort"
)

const (
	TopN                 = 10
	primaryLossCandidate = 20
	fanOutLimit          = 8
)

// Source is the subset of the forest accessors the aggregations read.
type Source interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	LossTrend(ctx context.Context, country string) ([]domain.LossTrendPoint, error)
	Drivers(ctx context.Context, country string) ([]domain.DriverBreakdown, error)
	CumulativeTreeCoverLoss(ctx context.Context) ([]domain.CountryTotal, error)
	CumulativePrimaryLoss(ctx context.Context, country string) ([]domain.CumulativePrimaryLossPoint, error)
}

type Service struct {
	src            Source
	trendCountries []string
}

func NewGlobalService(src Source, trendCountries []string) *Service {
	return &Service{src: src, trendCountries: trendCountries}
}

// LossTrend sums tree-cover loss per year over the trend countries, in
// ascending year order.
func (s *Service) LossTrend(ctx context.Context) []domain.TimeSeriesPoint {
	rs := settle.All(ctx, s.trendCountries, fanOutLimit, s.src.LossTrend)

	byYear := make(map[domain.Year]decimal.Decimal)
	for i, r := range rs {
		if r.Err != nil {
			logger.Warnf(ctx, "global loss trend: %s: %v", s.trendCountries[i], r.Err)
			continue
		}
		for _, p := range r.Value {
			if p.Year == 0 {
				continue
			}
			byYear[p.Year] = byYear[p.Year].Add(decimal.NewFromFloat(p.TreeCoverLossHa))
		}
	}

	out := make([]domain.TimeSeriesPoint, 0, len(byYear))
	for y, v := range byYear {
		out = append(out, domain.TimeSeriesPoint{Year: y, Value: v.InexactFloat64()})
	}
	domain.SortSeries(out)
	return out
}

// Drivers combines the driver breakdowns of the TopN countries by cumulative
// loss and recomputes percentages from the combined total.
func (s *Service) Drivers(ctx context.Context) (*domain.GlobalDrivers, error) {
	totals, err := s.src.CumulativeTreeCoverLoss(ctx)
	if err != nil {
		logger.Warnf(ctx, "global drivers: cumulative totals: %v", err)
		return &domain.GlobalDrivers{Drivers: []domain.DriverShare{}}, nil
	}

	top := topTotals(totals, TopN)
	countries := make([]string, 0, len(top))
	for _, t := range top {
		countries = append(countries, t.Country)
	}

	rs := settle.All(ctx, countries, fanOutLimit, s.src.Drivers)

	out := &domain.GlobalDrivers{Drivers: []domain.DriverShare{}}
	byDriver := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for i, r := range rs {
		if r.Err != nil {
			logger.Warnf(ctx, "global drivers: %s: %v", countries[i], r.Err)
			continue
		}
		contributed := false
		for _, d := range r.Value {
			if d.Driver == "" || d.Hectares == 0 {
				continue
			}
			h := decimal.NewFromFloat(d.Hectares)
			byDriver[d.Driver] = byDriver[d.Driver].Add(h)
			total = total.Add(h)
			contributed = true
		}
		if contributed {
			out.CountriesProcessed++
		}
	}

	if total.IsZero() {
		return out, nil
	}

	hundred := decimal.NewFromInt(100)
	for driver, h := range byDriver {
		out.Drivers = append(out.Drivers, domain.DriverShare{
			Driver:     driver,
			Hectares:   h.InexactFloat64(),
			Percentage: int(h.Div(total).Mul(hundred).Round(0).IntPart()),
		})
	}
	sort.Slice(out.Drivers, func(i, j int) bool {
		a, b := out.Drivers[i], out.Drivers[j]
		if a.Hectares != b.Hectares {
			return a.Hectares > b.Hectares
		}
		return a.Driver < b.Driver
	})
	return out, nil
}

// TopByTotalLoss returns the n countries with the largest cumulative loss,
// rounded to whole hectares.
func (s *Service) TopByTotalLoss(ctx context.Context, n int) ([]domain.CountryTotal, error) {
	totals, err := s.src.CumulativeTreeCoverLoss(ctx)
	if err != nil {
		logger.Warnf(ctx, "top total loss: cumulative totals: %v", err)
		return []domain.CountryTotal{}, nil
	}

	top := topTotals(totals, n)
	for i := range top {
		top[i].CumulativeTreeCoverLossHa = math.Round(top[i].CumulativeTreeCoverLossHa)
	}
	return top, nil
}

// TopByPrimaryLoss looks at the first candidate countries of the country list
// and ranks those with a positive latest cumulative primary loss.
func (s *Service) TopByPrimaryLoss(ctx context.Context) ([]domain.CountryPrimaryLoss, error) {
	countries, err := s.src.Countries(ctx)
	if err != nil {
		logger.Warnf(ctx, "top primary loss: countries: %v", err)
		return []domain.CountryPrimaryLoss{}, nil
	}
	if len(countries) > primaryLossCandidate {
		countries = countries[:primaryLossCandidate]
	}

	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, c.Name)
	}
	rs := settle.All(ctx, names, fanOutLimit, s.src.CumulativePrimaryLoss)

	out := make([]domain.CountryPrimaryLoss, 0, len(names))
	for i, r := range rs {
		if r.Err != nil {
			logger.Warnf(ctx, "top primary loss: %s: %v", names[i], r.Err)
			continue
		}
		latest, ok := latestPoint(r.Value)
		if !ok || latest.CumulativePrimaryForestLossHa <= 0 {
			continue
		}
		out = append(out, domain.CountryPrimaryLoss{
			Country:             names[i],
			PrimaryForestLossHa: latest.CumulativePrimaryForestLossHa,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PrimaryForestLossHa > out[j].PrimaryForestLossHa
	})
	if len(out) > TopN {
		out = out[:TopN]
	}
	return out, nil
}

func topTotals(totals []domain.CountryTotal, n int) []domain.CountryTotal {
	sorted := make([]domain.CountryTotal, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CumulativeTreeCoverLossHa > sorted[j].CumulativeTreeCoverLossHa
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func latestPoint(pts []domain.CumulativePrimaryLossPoint) (domain.CumulativePrimaryLossPoint, bool) {
	if len(pts) == 0 {
		return domain.CumulativePrimaryLossPoint{}, false
	}
	latest := pts[0]
	for _, p := range pts[1:] {
		if p.Year > latest.Year {
			latest = p
		}
	}
	return latest, true
}
