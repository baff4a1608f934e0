// Package refdata holds the static country reference tables and the pure
// functions that read them.
package refdata

import (
	"strings"

	"github.com/ougirez/forestwatch/internal/domain"
)

const fallbackCodeLen = 3

// Normalize maps a data API country name to a Country. Names missing from the
// table get the first three characters of the name, uppercased. That fallback
// can collide between countries, so it must not be used as a unique key.
func Normalize(name string) domain.Country {
	if code, ok := countryCodes[name]; ok {
		return domain.Country{Code: code, Name: name}
	}
	return domain.Country{Code: fallbackCode(name), Name: name}
}

// NormalizeAll keeps input order.
func NormalizeAll(names []string) []domain.Country {
	out := make([]domain.Country, 0, len(names))
	for _, n := range names {
		out = append(out, Normalize(n))
	}
	return out
}

// IsFallback reports whether Normalize had to synthesize the code for name.
func IsFallback(name string) bool {
	_, ok := countryCodes[name]
	return !ok
}

// CodeFor returns the table code only, without falling back.
func CodeFor(name string) (string, bool) {
	code, ok := countryCodes[name]
	return code, ok
}

func fallbackCode(name string) string {
	r := []rune(name)
	if len(r) > fallbackCodeLen {
		r = r[:fallbackCodeLen]
	}
	return strings.ToUpper(string(r))
}

// ResolveGeometryName translates a map-geometry country name to the data API
// spelling: exact alias first, then a case-insensitive alias, else unchanged.
func ResolveGeometryName(geoName string) string {
	if v, ok := geometryAliases[geoName]; ok {
		return v
	}
	if v, ok := foldedAliases[strings.ToLower(geoName)]; ok {
		return v
	}
	return geoName
}

var foldedAliases = func() map[string]string {
	m := make(map[string]string, len(geometryAliases))
	for k, v := range geometryAliases {
		m[strings.ToLower(k)] = v
	}
	return m
}()

// MatchCell finds the map cell for a geometry feature. The boolean is false
// when the API has no row for that country, which callers must render as
// "no data" rather than as zero loss.
func MatchCell(cells []domain.MapCell, geoName string) (domain.MapCell, bool) {
	resolved := ResolveGeometryName(geoName)

	for _, c := range cells {
		if c.Country == resolved {
			return c, true
		}
	}
	for _, c := range cells {
		if strings.EqualFold(c.Country, resolved) {
			return c, true
		}
	}
	if resolved != geoName {
		for _, c := range cells {
			if c.Country == geoName || strings.EqualFold(c.Country, geoName) {
				return c, true
			}
		}
	}
	return domain.MapCell{}, false
}
