package refdata

// geometryAliases maps spellings used by the world-atlas geometry source to
// the spellings used by the data API. Identity pairs are omitted.
var geometryAliases = map[string]string{
	"United States of America":         "United States",
	"USA":                              "United States",
	"Czech Republic":                   "Czechia",
	"Ivory Coast":                      "Côte d'Ivoire",
	"Democratic Republic of the Congo": "Democratic Republic Of The Congo",
	"DR Congo":                         "Democratic Republic Of The Congo",
	"Dem. Rep. Congo":                  "Democratic Republic Of The Congo",
	"Congo (Kinshasa)":                 "Democratic Republic Of The Congo",
	"Republic of the Congo":            "Republic Of The Congo",
	"Congo":                            "Republic Of The Congo",
	"Congo (Brazzaville)":              "Republic Of The Congo",
	"Myanmar (Burma)":                  "Myanmar",
	"Burma":                            "Myanmar",
	"Korea (South)":                    "South Korea",
	"Korea (North)":                    "North Korea",
	"Somaliland":                       "Somalia",
	"S. Sudan":                         "South Sudan",
	"Sao Tome and Principe":            "São Tomé And Príncipe",
	"St. Kitts and Nevis":              "Saint Kitts and Nevis",
	"St. Vincent and the Grenadines":   "Saint Vincent and the Grenadines",
	"St. Lucia":                        "Saint Lucia",
	"Dominican Rep.":                   "Dominican Republic",
	"Antigua & Barbuda":                "Antigua and Barbuda",
	"Trinidad & Tobago":                "Trinidad and Tobago",
	"Reunion":                          "Réunion",
	"Federated States of Micronesia":   "Micronesia",
	"U.S. Virgin Islands":              "Virgin Islands, U.S.",
	"Virgin Islands":                   "Virgin Islands, U.S.",
	"Curacao":                          "Curaçao",
	"Åland Islands":                    "Åland",
	"Aland":                            "Åland",
	"Macao":                            "Macau",
	"East Timor":                       "Timor-Leste",
	"Timor Leste":                      "Timor-Leste",
	"Central African Rep.":             "Central African Republic",
	"Moldova, Republic of":             "Moldova",
	"Republic of Moldova":              "Moldova",
	"Cote d'Ivoire":                    "Côte d'Ivoire",
	"Cote dIvoire":                     "Côte d'Ivoire",
	"Côte D'Ivoire":                    "Côte d'Ivoire",
}
