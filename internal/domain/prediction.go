package domain

import "fmt"

type PredictionPoint struct {
	Year            Year    `json:"year"`
	TreeCoverLossHa float64 `json:"tree_cover_loss_ha"`
}

func (p PredictionPoint) Point() TimeSeriesPoint {
	return TimeSeriesPoint{Year: p.Year, Value: p.TreeCoverLossHa}
}

// PredictionResult is one country's forecast. Historical points are observed,
// Predictions are model output; they never overlap and split at LastYear.
type PredictionResult struct {
	Historical       []PredictionPoint `json:"historical"`
	Predictions      []PredictionPoint `json:"predictions"`
	LastYear         Year              `json:"last_year"`
	TargetYear       Year              `json:"target_year"`
	TargetPrediction float64           `json:"target_prediction"`
	AvgHistorical    float64           `json:"avg_historical"`
	ChangePct        float64           `json:"change_pct"`
}

// Validate checks the historical/predicted partition at LastYear.
func (p *PredictionResult) Validate() error {
	for _, h := range p.Historical {
		if h.Year > p.LastYear {
			return fmt.Errorf("historical point %d is after last year %d", h.Year, p.LastYear)
		}
	}
	for _, f := range p.Predictions {
		if f.Year <= p.LastYear {
			return fmt.Errorf("predicted point %d is not after last year %d", f.Year, p.LastYear)
		}
	}
	return nil
}

type MultiCountryPrediction struct {
	TargetYear          Year                         `json:"target_year"`
	CountriesProcessed  int                          `json:"countries_processed"`
	Results             map[string]*PredictionResult `json:"results"`
	Errors              map[string]string            `json:"errors"`
	CountriesWithErrors int                          `json:"countries_with_errors"`
}

// MissingResultMessage is recorded for requested countries the server dropped.
const MissingResultMessage = "no prediction returned for country"

// Reconcile makes every requested country appear in exactly one of Results or
// Errors and recomputes the counters from the maps.
func (m *MultiCountryPrediction) Reconcile(requested []string) {
	if m.Results == nil {
		m.Results = make(map[string]*PredictionResult)
	}
	if m.Errors == nil {
		m.Errors = make(map[string]string)
	}

	for _, c := range requested {
		_, ok := m.Results[c]
		_, failed := m.Errors[c]
		switch {
		case ok && failed:
			delete(m.Errors, c)
		case !ok && !failed:
			m.Errors[c] = MissingResultMessage
		}
	}

	m.CountriesProcessed = len(m.Results) + len(m.Errors)
	m.CountriesWithErrors = len(m.Errors)
}
