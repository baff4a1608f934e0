package domain

import "testing"

func TestReconcile(t *testing.T) {
	m := &MultiCountryPrediction{
		Results: map[string]*PredictionResult{
			"Brazil": {LastYear: 2023},
			"Peru":   {LastYear: 2023},
		},
		Errors: map[string]string{
			"Peru": "stale error",
			"Chad": "no data",
		},
	}
	m.Reconcile([]string{"Brazil", "Peru", "Chad", "Bolivia"})

	if _, ok := m.Errors["Peru"]; ok {
		t.Fatal("a country with a result must not also be an error")
	}
	if m.Errors["Bolivia"] != MissingResultMessage {
		t.Fatalf("missing country: %q", m.Errors["Bolivia"])
	}
	if m.CountriesProcessed != 4 || m.CountriesWithErrors != 2 {
		t.Fatalf("counters: processed=%d errors=%d", m.CountriesProcessed, m.CountriesWithErrors)
	}
}

func TestReconcile_NilMaps(t *testing.T) {
	m := &MultiCountryPrediction{}
	m.Reconcile([]string{"Chad"})
	if m.Results == nil || m.Errors["Chad"] != MissingResultMessage {
		t.Fatalf("got %+v", m)
	}
}

func TestPredictionValidate(t *testing.T) {
	ok := &PredictionResult{
		Historical:  []PredictionPoint{{Year: 2022}, {Year: 2023}},
		Predictions: []PredictionPoint{{Year: 2024}},
		LastYear:    2023,
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid partition: %v", err)
	}

	late := &PredictionResult{Historical: []PredictionPoint{{Year: 2024}}, LastYear: 2023}
	if err := late.Validate(); err == nil {
		t.Fatal("historical point after last year must fail")
	}

	early := &PredictionResult{Predictions: []PredictionPoint{{Year: 2023}}, LastYear: 2023}
	if err := early.Validate(); err == nil {
		t.Fatal("predicted point at last year must fail")
	}
}

func TestFormatHectares(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1_234_567, "1.2M ha"},
		{350_000, "350K ha"},
		{1_500, "2K ha"},
		{12, "12 ha"},
		{0, "0 ha"},
	}
	for _, tc := range cases {
		if got := FormatHectares(tc.in); got != tc.want {
			t.Errorf("FormatHectares(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPoints(t *testing.T) {
	in := []EmissionsPoint{{Year: 2021, CarbonGrossEmissionsMgCO: 7}}
	out := Points(in)
	if len(out) != 1 || out[0] != (TimeSeriesPoint{Year: 2021, Value: 7}) {
		t.Fatalf("points: %+v", out)
	}

	s := []TimeSeriesPoint{{Year: 2022}, {Year: 2001}}
	SortSeries(s)
	if s[0].Year != 2001 {
		t.Fatalf("sorted: %+v", s)
	}
}
