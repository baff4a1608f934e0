// Package forest binds every resource of the forest statistics API to a
// typed method.
package forest

import (
	"context"
	"fmt"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/pkg/refdata"
	"github.com/ougirez/forestwatch/internal/pkg/settle"
	"github.com/ougirez/forestwatch/internal/pkg/validate"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	pathSummary                  = "/api/summary"
	pathCountries                = "/api/countries"
	pathMapData                  = "/api/map-data"
	pathLossTrend                = "/api/loss-trend"
	pathPrimaryLossTrend         = "/api/primary-loss-trend"
	pathCumulativeLossTrend      = "/api/cumulative-tree-cover-loss-trend"
	pathCumulativeTreeCoverLoss  = "/api/cumulative-tree-cover-loss"
	pathCumulativePrimaryLoss    = "/api/cumulative-primary-loss"
	pathCumulativeDrivers        = "/api/cumulative-drivers"
	pathPrimaryLossAllCountries  = "/api/primary-loss-all-countries"
	pathDrivers                  = "/api/drivers"
	pathEmissions                = "/api/emissions"
	pathPredict                  = "/api/predict"
	pathRecommendations          = "/api/recommendations"
	pathInsights                 = "/api/insights"
	pathRecommendationsTemplates = "/api/recommendations/templates"

	predictEachLimit = 4
)

// API is the transport the accessors need; *apiclient.Client implements it.
type API interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
	Post(ctx context.Context, path string, body interface{}, out interface{}, timeout time.Duration) error
}

type Service struct {
	api API
}

func NewForestService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) Summary(ctx context.Context) (*domain.Summary, error) {
	var out domain.Summary
	if err := s.api.Get(ctx, pathSummary, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Countries returns every country the API knows, with synthesized codes.
func (s *Service) Countries(ctx context.Context) ([]domain.Country, error) {
	var names []string
	if err := s.api.Get(ctx, pathCountries, nil, &names); err != nil {
		return nil, err
	}
	return refdata.NormalizeAll(names), nil
}

// MapData returns one cell per country. With year set the API answers the
// animated per-year view.
func (s *Service) MapData(ctx context.Context, year *domain.Year) ([]domain.MapCell, error) {
	var q url.Values
	if year != nil && *year != 0 {
		q = url.Values{
			"animated": {"true"},
			"year":     {strconv.Itoa(*year)},
		}
	}
	out := make([]domain.MapCell, 0)
	if err := s.api.Get(ctx, pathMapData, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PrimaryMapData is primary-forest loss for a single year shaped as map cells.
// Without a year there is nothing to show.
func (s *Service) PrimaryMapData(ctx context.Context, year domain.Year) ([]domain.MapCell, error) {
	if year == 0 {
		return []domain.MapCell{}, nil
	}

	rows, err := s.PrimaryLossAllCountries(ctx, &year, &year)
	if err != nil {
		return nil, err
	}

	cells := make([]domain.MapCell, 0, len(rows))
	for _, r := range rows {
		y := year
		cells = append(cells, domain.MapCell{
			Country:         r.Country,
			Year:            &y,
			TreeCoverLossHa: r.PrimaryForestLossHa,
		})
	}
	return cells, nil
}

func (s *Service) LossTrend(ctx context.Context, country string) ([]domain.LossTrendPoint, error) {
	return getByCountry[domain.LossTrendPoint](ctx, s.api, pathLossTrend, country)
}

func (s *Service) PrimaryLossTrend(ctx context.Context, country string) ([]domain.PrimaryLossPoint, error) {
	return getByCountry[domain.PrimaryLossPoint](ctx, s.api, pathPrimaryLossTrend, country)
}

func (s *Service) CumulativeLossTrend(ctx context.Context, country string) ([]domain.CumulativeLossPoint, error) {
	return getByCountry[domain.CumulativeLossPoint](ctx, s.api, pathCumulativeLossTrend, country)
}

func (s *Service) CumulativePrimaryLoss(ctx context.Context, country string) ([]domain.CumulativePrimaryLossPoint, error) {
	return getByCountry[domain.CumulativePrimaryLossPoint](ctx, s.api, pathCumulativePrimaryLoss, country)
}

func (s *Service) CumulativeDrivers(ctx context.Context, country string) ([]domain.CumulativeDriver, error) {
	return getByCountry[domain.CumulativeDriver](ctx, s.api, pathCumulativeDrivers, country)
}

func (s *Service) Drivers(ctx context.Context, country string) ([]domain.DriverBreakdown, error) {
	return getByCountry[domain.DriverBreakdown](ctx, s.api, pathDrivers, country)
}

func (s *Service) Emissions(ctx context.Context, country string) ([]domain.EmissionsPoint, error) {
	return getByCountry[domain.EmissionsPoint](ctx, s.api, pathEmissions, country)
}

// CumulativeTreeCoverLoss is the cumulative loss of every country.
func (s *Service) CumulativeTreeCoverLoss(ctx context.Context) ([]domain.CountryTotal, error) {
	out := make([]domain.CountryTotal, 0)
	if err := s.api.Get(ctx, pathCumulativeTreeCoverLoss, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PrimaryLossAllCountries is primary loss per country, optionally limited to
// a year range. Either bound may be left open.
func (s *Service) PrimaryLossAllCountries(ctx context.Context, start, end *domain.Year) ([]domain.CountryPrimaryLoss, error) {
	q := url.Values{}
	if start != nil && *start != 0 {
		q.Set("year_start", strconv.Itoa(*start))
	}
	if end != nil && *end != 0 {
		q.Set("year_end", strconv.Itoa(*end))
	}

	out := make([]domain.CountryPrimaryLoss, 0)
	if err := s.api.Get(ctx, pathPrimaryLossAllCountries, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// getByCountry answers an empty selection locally with an empty series.
func getByCountry[T any](ctx context.Context, api API, path, country string) ([]T, error) {
	out := make([]T, 0)
	if strings.TrimSpace(country) == "" {
		return out, nil
	}
	if err := api.Get(ctx, path, url.Values{"country": {country}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type predictRequest struct {
	Country string      `json:"country" validate:"required"`
	Year    domain.Year `json:"year" validate:"required"`
}

type predictMultiRequest struct {
	Countries []string    `json:"countries" validate:"required,min=1,dive,required"`
	Year      domain.Year `json:"year" validate:"required"`
}

// Predict forecasts tree-cover loss for one country up to year.
func (s *Service) Predict(ctx context.Context, country string, year domain.Year) (*domain.PredictionResult, error) {
	req := predictRequest{Country: country, Year: year}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var out domain.PredictionResult
	if err := s.api.Post(ctx, pathPredict, req, &out, 0); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("predict %s: %w", country, err)
	}
	return &out, nil
}

// PredictMulti asks the API for several countries in one request. Every
// requested country ends up in exactly one of Results or Errors.
func (s *Service) PredictMulti(ctx context.Context, countries []string, year domain.Year) (*domain.MultiCountryPrediction, error) {
	req := predictMultiRequest{Countries: countries, Year: year}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var out domain.MultiCountryPrediction
	if err := s.api.Post(ctx, pathPredict, req, &out, 0); err != nil {
		return nil, err
	}

	for country, res := range out.Results {
		if res == nil {
			delete(out.Results, country)
			continue
		}
		if err := res.Validate(); err != nil {
			delete(out.Results, country)
			if out.Errors == nil {
				out.Errors = make(map[string]string)
			}
			out.Errors[country] = err.Error()
		}
	}
	if out.TargetYear == 0 {
		out.TargetYear = year
	}
	out.Reconcile(countries)
	return &out, nil
}

// PredictEach issues one single-country request per country and gathers
// them into the multi-country shape. A failure only affects its country.
func (s *Service) PredictEach(ctx context.Context, countries []string, year domain.Year) (*domain.MultiCountryPrediction, error) {
	req := predictMultiRequest{Countries: countries, Year: year}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	rs := settle.All(ctx, countries, predictEachLimit, func(ctx context.Context, country string) (*domain.PredictionResult, error) {
		return s.Predict(ctx, country, year)
	})

	out := &domain.MultiCountryPrediction{
		TargetYear: year,
		Results:    make(map[string]*domain.PredictionResult),
		Errors:     make(map[string]string),
	}
	for i, r := range rs {
		if r.Err != nil {
			logger.Warnf(ctx, "predict %s: %v", countries[i], r.Err)
			out.Errors[countries[i]] = r.Err.Error()
			continue
		}
		out.Results[countries[i]] = r.Value
	}
	out.Reconcile(countries)
	return out, nil
}

type recommendationBody struct {
	Country            string             `json:"country"`
	Stakeholder        domain.Stakeholder `json:"stakeholder"`
	DataRange          domain.DataRange   `json:"dataRange"`
	IncludePredictions string             `json:"includePredictions"`
	Language           string             `json:"language,omitempty"`
}

// Recommendations asks for a stakeholder report. Identical requests may
// return different text.
func (s *Service) Recommendations(ctx context.Context, rc domain.RecommendationContext) (*domain.RecommendationResponse, error) {
	if err := validate.Struct(rc); err != nil {
		return nil, err
	}

	body := recommendationBody{
		Country:            rc.Country,
		Stakeholder:        rc.Stakeholder,
		DataRange:          rc.DataRange,
		IncludePredictions: strconv.FormatBool(rc.IncludePredictions),
		Language:           rc.Language,
	}

	var out domain.RecommendationResponse
	if err := s.api.Post(ctx, pathRecommendations, body, &out, 0); err != nil {
		return nil, err
	}
	return &out, nil
}

type insightBody struct {
	Countries    string              `json:"countries"`
	Metrics      string              `json:"metrics"`
	Timeframe    string              `json:"timeframe"`
	AnalysisType domain.AnalysisType `json:"analysisType"`
}

func (s *Service) Insights(ctx context.Context, req domain.InsightRequest) (*domain.InsightResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	body := insightBody{
		Countries:    strings.Join(req.Countries, ","),
		Metrics:      strings.Join(req.Metrics, ","),
		Timeframe:    req.Timeframe,
		AnalysisType: req.AnalysisType,
	}

	var out domain.InsightResponse
	if err := s.api.Post(ctx, pathInsights, body, &out, 0); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) RecommendationTemplates(ctx context.Context) (*domain.TemplatesResponse, error) {
	var out domain.TemplatesResponse
	if err := s.api.Get(ctx, pathRecommendationsTemplates, nil, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		out.Data = []domain.Template{}
	}
	return &out, nil
}
