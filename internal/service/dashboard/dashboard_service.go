// Package dashboard exposes one cached query per dashboard view, each with
// the freshness and retry policy of its resource.
package dashboard

import (
	"context"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/pkg/query"
	"github.com/ougirez/forestwatch/internal/service/forest"
	"github.com/ougirez/forestwatch/internal/service/global"
	"github.com/ougirez/forestwatch/internal/service/report"
	"strings"
	"time"
)

const (
	keySummary               = "summary"
	keyCountries             = "countries"
	keyLossTrend             = "loss-trend"
	keyPrimaryLossTrend      = "primary-loss-trend"
	keyCumulativeLossTrend   = "cumulative-loss-trend"
	keyCumulativePrimaryLoss = "cumulative-primary-loss"
	keyCumulativeDrivers     = "cumulative-drivers"
	keyDrivers               = "drivers"
	keyEmissions             = "emissions"
	keyMapData               = "map-data"
	keyPrimaryMapData        = "primary-map-data"
	keyPrediction            = "prediction"
	keyMultiPrediction       = "multi-prediction"
	keyMultiPredictionEach   = "multi-prediction-each"
	keyRecommendations       = "recommendations"
	keyInsights              = "insights"
	keyTemplates             = "recommendation-templates"
	keyGlobalLossTrend       = "global-loss-trend"
	keyGlobalDrivers         = "global-drivers"
	keyTopTotalLoss          = "top-countries-total-loss"
	keyTopPrimaryLoss        = "top-countries-primary-loss"
)

type Service struct {
	cache   *query.Cache
	forest  *forest.Service
	global  *global.Service
	reports *report.Service
	pol     policies
}

type Option func(*Service)

// WithRetryDelays overrides the backoff base and ceiling of every resource.
func WithRetryDelays(base, max time.Duration) Option {
	return func(s *Service) {
		s.pol.base = base
		s.pol.max = max
	}
}

// WithStaleTime overrides the freshness window of the resources without a
// dedicated one.
func WithStaleTime(d time.Duration) Option {
	return func(s *Service) { s.pol.staleTime = d }
}

func NewDashboardService(cache *query.Cache, fs *forest.Service, gs *global.Service, rs *report.Service, opts ...Option) *Service {
	s := &Service{
		cache:   cache,
		forest:  fs,
		global:  gs,
		reports: rs,
		pol: policies{
			base:      query.DefaultBaseDelay,
			max:       query.DefaultMaxDelay,
			staleTime: query.DefaultStaleTime,
		},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Cache() *query.Cache {
	return s.cache
}

func (s *Service) Summary(ctx context.Context) query.Result[*domain.Summary] {
	return query.New(s.cache, query.NewKey(keySummary), s.forest.Summary, s.pol.standard()).Fetch(ctx)
}

func (s *Service) Countries(ctx context.Context) query.Result[[]domain.Country] {
	return query.New(s.cache, query.NewKey(keyCountries), s.forest.Countries, s.pol.standard()).Fetch(ctx)
}

func (s *Service) LossTrend(ctx context.Context, country string) query.Result[[]domain.LossTrendPoint] {
	return byCountry(ctx, s, keyLossTrend, country, s.forest.LossTrend)
}

func (s *Service) PrimaryLossTrend(ctx context.Context, country string) query.Result[[]domain.PrimaryLossPoint] {
	return byCountry(ctx, s, keyPrimaryLossTrend, country, s.forest.PrimaryLossTrend)
}

func (s *Service) CumulativeLossTrend(ctx context.Context, country string) query.Result[[]domain.CumulativeLossPoint] {
	return byCountry(ctx, s, keyCumulativeLossTrend, country, s.forest.CumulativeLossTrend)
}

func (s *Service) CumulativePrimaryLoss(ctx context.Context, country string) query.Result[[]domain.CumulativePrimaryLossPoint] {
	return byCountry(ctx, s, keyCumulativePrimaryLoss, country, s.forest.CumulativePrimaryLoss)
}

func (s *Service) CumulativeDrivers(ctx context.Context, country string) query.Result[[]domain.CumulativeDriver] {
	return byCountry(ctx, s, keyCumulativeDrivers, country, s.forest.CumulativeDrivers)
}

func (s *Service) Emissions(ctx context.Context, country string) query.Result[[]domain.EmissionsPoint] {
	return byCountry(ctx, s, keyEmissions, country, s.forest.Emissions)
}

// Drivers is keyed by year as well: the view asks per year even though the
// API answers the same breakdown.
func (s *Service) Drivers(ctx context.Context, country string, year *domain.Year) query.Result[[]domain.DriverBreakdown] {
	load := func(ctx context.Context) ([]domain.DriverBreakdown, error) {
		return s.forest.Drivers(ctx, country)
	}
	return query.New(s.cache, query.NewKey(keyDrivers, country, year), load, s.pol.standard()).Fetch(ctx)
}

func byCountry[T any](ctx context.Context, s *Service, resource, country string, fn func(context.Context, string) ([]T, error)) query.Result[[]T] {
	load := func(ctx context.Context) ([]T, error) {
		return fn(ctx, country)
	}
	return query.New(s.cache, query.NewKey(resource, country), load, s.pol.standard()).Fetch(ctx)
}

// MapData changes at most yearly: once loaded it is served for a day without
// any revalidation.
func (s *Service) MapData(ctx context.Context, year *domain.Year) query.Result[[]domain.MapCell] {
	load := func(ctx context.Context) ([]domain.MapCell, error) {
		return s.forest.MapData(ctx, year)
	}
	return query.New(s.cache, query.NewKey(keyMapData, year), load, s.pol.mapOverlay()).Fetch(ctx)
}

func (s *Service) PrimaryMapData(ctx context.Context, year domain.Year) query.Result[[]domain.MapCell] {
	load := func(ctx context.Context) ([]domain.MapCell, error) {
		return s.forest.PrimaryMapData(ctx, year)
	}
	p := s.pol.mapOverlay().EnabledIf(year != 0)
	return query.New(s.cache, query.NewKey(keyPrimaryMapData, year), load, p).Fetch(ctx)
}

func (s *Service) Prediction(ctx context.Context, country string, year domain.Year) query.Result[*domain.PredictionResult] {
	load := func(ctx context.Context) (*domain.PredictionResult, error) {
		return s.forest.Predict(ctx, country, year)
	}
	p := s.pol.standard().EnabledIf(country != "" && year != 0)
	return query.New(s.cache, query.NewKey(keyPrediction, country, year), load, p).Fetch(ctx)
}

func (s *Service) MultiPrediction(ctx context.Context, countries []string, year domain.Year) query.Result[*domain.MultiCountryPrediction] {
	load := func(ctx context.Context) (*domain.MultiCountryPrediction, error) {
		return s.forest.PredictMulti(ctx, countries, year)
	}
	p := s.pol.standard().EnabledIf(len(countries) > 0 && year != 0)
	return query.New(s.cache, query.NewKey(keyMultiPrediction, countries, year), load, p).Fetch(ctx)
}

// MultiPredictionEach predicts country by country instead of asking for all
// of them in one request.
func (s *Service) MultiPredictionEach(ctx context.Context, countries []string, year domain.Year) query.Result[*domain.MultiCountryPrediction] {
	load := func(ctx context.Context) (*domain.MultiCountryPrediction, error) {
		return s.forest.PredictEach(ctx, countries, year)
	}
	p := s.pol.standard().EnabledIf(len(countries) > 0 && year != 0)
	return query.New(s.cache, query.NewKey(keyMultiPredictionEach, countries, year), load, p).Fetch(ctx)
}

// Recommendations generates a report for rc, keeping it for an hour. Every
// freshly generated answer is archived when an archive is configured.
func (s *Service) Recommendations(ctx context.Context, rc domain.RecommendationContext) query.Result[*domain.RecommendationResponse] {
	load := func(ctx context.Context) (*domain.RecommendationResponse, error) {
		resp, err := s.forest.Recommendations(ctx, rc)
		if err != nil {
			return nil, err
		}
		if s.reports != nil && s.reports.Enabled() {
			if _, err := s.reports.Archive(ctx, rc, resp); err != nil {
				logger.Errorf(ctx, "archive recommendations for %s: %v", rc.Country, err)
			}
		}
		return resp, nil
	}

	key := query.NewKey(keyRecommendations, rc.Country, string(rc.Stakeholder), rc.DataRange)
	p := s.pol.recommendations().EnabledIf(rc.Country != "" && rc.Stakeholder != "")
	return query.New(s.cache, key, load, p).Fetch(ctx)
}

func (s *Service) Insights(ctx context.Context, req domain.InsightRequest) query.Result[*domain.InsightResponse] {
	load := func(ctx context.Context) (*domain.InsightResponse, error) {
		return s.forest.Insights(ctx, req)
	}

	key := query.NewKey(keyInsights, req.Countries, req.Metrics, string(req.AnalysisType))
	p := s.pol.insights().EnabledIf(len(req.Countries) > 0 && len(req.Metrics) > 0)
	return query.New(s.cache, key, load, p).Fetch(ctx)
}

func (s *Service) RecommendationTemplates(ctx context.Context) query.Result[*domain.TemplatesResponse] {
	return query.New(s.cache, query.NewKey(keyTemplates), s.forest.RecommendationTemplates, s.pol.templates()).Fetch(ctx)
}

// InvalidateRecommendations marks the reports of country stale, or all of
// them when country is empty.
func (s *Service) InvalidateRecommendations(country string) int {
	prefix := query.NewKey(keyRecommendations)
	if country = strings.TrimSpace(country); country != "" {
		prefix = query.NewKey(keyRecommendations, country)
	}
	return s.cache.Invalidate(prefix)
}

func (s *Service) InvalidateInsights() int {
	return s.cache.Invalidate(query.NewKey(keyInsights))
}

// Invalidate marks every entry of resource stale; an empty resource means all.
func (s *Service) Invalidate(resource string) int {
	n := 0
	for _, k := range resourceKeys(resource) {
		n += s.cache.Invalidate(query.NewKey(k))
	}
	return n
}

func resourceKeys(resource string) []string {
	if resource != "" {
		return []string{resource}
	}
	return []string{
		keySummary, keyCountries, keyLossTrend, keyPrimaryLossTrend, keyCumulativeLossTrend,
		keyCumulativePrimaryLoss, keyCumulativeDrivers, keyDrivers, keyEmissions, keyMapData,
		keyPrimaryMapData, keyPrediction, keyMultiPrediction, keyMultiPredictionEach, keyRecommendations, keyInsights,
		keyTemplates, keyGlobalLossTrend, keyGlobalDrivers, keyTopTotalLoss, keyTopPrimaryLoss,
	}
}

// Notify forwards a focus or reconnect event to the cache.
func (s *Service) Notify(ctx context.Context, ev query.Event) int {
	return s.cache.Notify(ctx, ev)
}
