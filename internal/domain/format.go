package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatHectares renders an area the way the dashboard labels it:
// 1.2M ha, 350K ha, 12 ha.
func FormatHectares(v float64) string {
	d := decimal.NewFromFloat(v)
	switch {
	case v >= 1_000_000:
		return d.Div(decimal.NewFromInt(1_000_000)).StringFixed(1) + "M ha"
	case v >= 1_000:
		return d.Div(decimal.NewFromInt(1_000)).StringFixed(0) + "K ha"
	default:
		return strconv.FormatFloat(v, 'f', -1, 64) + " ha"
	}
}
