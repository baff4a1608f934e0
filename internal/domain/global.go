package domain

// DriverShare is one driver's part of a loss total aggregated over countries.
type DriverShare struct {
	Driver     string  `json:"driver"`
	Hectares   float64 `json:"hectares"`
	Percentage int     `json:"percentage"`
}

type GlobalDrivers struct {
	Drivers []DriverShare `json:"drivers"`
	// CountriesProcessed counts countries that contributed a non-zero driver total.
	CountriesProcessed int `json:"countries_processed"`
}
