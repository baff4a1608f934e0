package refdata

import (
	"strings"
	"testing"

	"github.com/ougirez/forestwatch/internal/domain"
)

func TestNormalize_KnownNames(t *testing.T) {
	cases := map[string]string{
		"Brazil":                           "BRA",
		"Indonesia":                        "IDN",
		"Democratic Republic Of The Congo": "COD",
		"Republic Of The Congo":            "COG",
		"Côte d'Ivoire":                    "CIV",
		"Kosovo":                           "XKX",
		"Åland":                            "ALA",
		"Virgin Islands, U.S.":             "VIR",
		"United States":                    "USA",
	}
	for name, want := range cases {
		got := Normalize(name)
		if got.Code != want {
			t.Errorf("Normalize(%q).Code = %q, want %q", name, got.Code, want)
		}
		if got.Name != name {
			t.Errorf("Normalize(%q).Name = %q", name, got.Name)
		}
		if IsFallback(name) {
			t.Errorf("IsFallback(%q) = true", name)
		}
	}
}

func TestNormalize_TableCodesAreStable(t *testing.T) {
	for name, code := range countryCodes {
		if len(code) != 3 || strings.ToUpper(code) != code {
			t.Errorf("%q has malformed code %q", name, code)
		}
		if got := Normalize(name).Code; got != code {
			t.Errorf("Normalize(%q).Code = %q, want %q", name, got, code)
		}
	}
	if len(countryCodes) < 185 {
		t.Errorf("country table has %d entries", len(countryCodes))
	}
}

func TestNormalize_Fallback(t *testing.T) {
	cases := map[string]string{
		"Atlantis":              "ATL",
		"narnia":                "NAR",
		"Xy":                    "XY",
		"":                      "",
		"Équateur imaginaire":   "ÉQU",
		"Saint Kitts and Nevis": "SAI",
	}
	for name, want := range cases {
		if !IsFallback(name) {
			t.Fatalf("%q unexpectedly in table", name)
		}
		if got := Normalize(name).Code; got != want {
			t.Errorf("Normalize(%q).Code = %q, want %q", name, got, want)
		}
	}
}

func TestNormalize_FallbackCanCollide(t *testing.T) {
	a := Normalize("Saint Kitts and Nevis")
	b := Normalize("Saint Lucia")
	if a.Code != b.Code {
		t.Fatalf("expected colliding fallback codes, got %q and %q", a.Code, b.Code)
	}
}

func TestResolveGeometryName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Czech Republic", "Czechia"},
		{"czech republic", "Czechia"},
		{"Dem. Rep. Congo", "Democratic Republic Of The Congo"},
		{"S. Sudan", "South Sudan"},
		{"Brazil", "Brazil"},
		{"Neverland", "Neverland"},
	}
	for _, tc := range cases {
		if got := ResolveGeometryName(tc.in); got != tc.want {
			t.Errorf("ResolveGeometryName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchCell(t *testing.T) {
	cells := []domain.MapCell{
		{Country: "Czechia", TreeCoverLossHa: 1200},
		{Country: "UNITED STATES", TreeCoverLossHa: 5},
		{Country: "Chad", TreeCoverLossHa: 0},
	}

	c, ok := MatchCell(cells, "Czech Republic")
	if !ok || c.TreeCoverLossHa != 1200 {
		t.Fatalf("Czech Republic: got %+v, %v", c, ok)
	}

	c, ok = MatchCell(cells, "United States of America")
	if !ok || c.TreeCoverLossHa != 5 {
		t.Fatalf("United States of America: got %+v, %v", c, ok)
	}

	c, ok = MatchCell(cells, "Chad")
	if !ok || c.TreeCoverLossHa != 0 {
		t.Fatalf("explicit zero must match: got %+v, %v", c, ok)
	}

	if _, ok := MatchCell(cells, "Neverland"); ok {
		t.Fatal("missing country must report no data")
	}
}
