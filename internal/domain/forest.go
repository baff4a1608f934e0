package domain

import "sort"

type Year = int

type Summary struct {
	Countries      int     `json:"countries"`
	TotalLoss      float64 `json:"total_loss"`
	TotalEmissions float64 `json:"total_emissions"`
	LatestYear     Year    `json:"latest_year"`
}

// Country is identified by Name; Code is synthesized locally and may collide.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type TimeSeriesPoint struct {
	Year  Year    `json:"year"`
	Value float64 `json:"value"`
}

// SortSeries orders points by ascending year in place.
func SortSeries(s []TimeSeriesPoint) {
	sort.Slice(s, func(i, j int) bool { return s[i].Year < s[j].Year })
}

type LossTrendPoint struct {
	Year                Year     `json:"year"`
	TreeCoverLossHa     float64  `json:"tree_cover_loss_ha"`
	PrimaryForestLossHa *float64 `json:"primary_forest_loss_ha,omitempty"`
}

func (p LossTrendPoint) Point() TimeSeriesPoint {
	return TimeSeriesPoint{Year: p.Year, Value: p.TreeCoverLossHa}
}

type PrimaryLossPoint struct {
	Year                Year    `json:"year"`
	PrimaryForestLossHa float64 `json:"primary_forest_loss_ha"`
}

func (p PrimaryLossPoint) Point() TimeSeriesPoint {
	return TimeSeriesPoint{Year: p.Year, Value: p.PrimaryForestLossHa}
}

type CumulativeLossPoint struct {
	Year                      Year    `json:"year"`
	CumulativeTreeCoverLossHa float64 `json:"cumulative_tree_cover_loss_ha"`
}

func (p CumulativeLossPoint) Point() TimeSeriesPoint {
	return TimeSeriesPoint{Year: p.Year, Value: p.CumulativeTreeCoverLossHa}
}

type CumulativePrimaryLossPoint struct {
	Year                          Year    `json:"year"`
	CumulativePrimaryForestLossHa float64 `json:"cumulative_primary_forest_loss_ha"`
}

func (p CumulativePrimaryLossPoint) Point() TimeSeriesPoint {
	return TimeSeriesPoint{Year: p.Year, Value: p.CumulativePrimaryForestLossHa}
}

type EmissionsPoint struct {
	Year                     Year    `json:"year"`
	TreeCoverLossHa          float64 `json:"tree_cover_loss_ha"`
	CarbonGrossEmissionsMgCO float64 `json:"carbon_gross_emissions_MgCO2e"`
}

func (p EmissionsPoint) Point() TimeSeriesPoint {
	return TimeSeriesPoint{Year: p.Year, Value: p.CarbonGrossEmissionsMgCO}
}

// DriverBreakdown percentages come from the server and need not sum to 100.
type DriverBreakdown struct {
	Driver     string   `json:"driver"`
	Hectares   float64  `json:"hectares"`
	Percentage *float64 `json:"percentage,omitempty"`
}

type CumulativeDriver struct {
	Driver             string  `json:"driver"`
	CumulativeHectares float64 `json:"cumulative_hectares"`
	Percentage         float64 `json:"percentage"`
}

// MapCell is one country's loss for a year. A country missing from a
// result set means "no data", which is not the same as a zero cell.
type MapCell struct {
	Country         string  `json:"country"`
	Year            *Year   `json:"year,omitempty"`
	TreeCoverLossHa float64 `json:"tree_cover_loss_ha"`
}

type CountryTotal struct {
	Country                   string  `json:"country"`
	CumulativeTreeCoverLossHa float64 `json:"cumulative_tree_cover_loss_ha"`
}

type CountryPrimaryLoss struct {
	Country             string  `json:"country"`
	PrimaryForestLossHa float64 `json:"primary_forest_loss_ha"`
}

// Points converts any per-endpoint series into the generic shape.
func Points[P interface{ Point() TimeSeriesPoint }](in []P) []TimeSeriesPoint {
	out := make([]TimeSeriesPoint, 0, len(in))
	for _, p := range in {
		out = append(out, p.Point())
	}
	return out
}
