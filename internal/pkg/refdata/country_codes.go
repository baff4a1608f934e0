package refdata

// countryCodes maps the data API's country names to ISO 3166-1 alpha-3 codes.
var countryCodes = map[string]string{
	"Afghanistan":                      "AFG",
	"Albania":                          "ALB",
	"Algeria":                          "DZA",
	"Angola":                           "AGO",
	"Argentina":                        "ARG",
	"Armenia":                          "ARM",
	"Australia":                        "AUS",
	"Austria":                          "AUT",
	"Azerbaijan":                       "AZE",
	"Bahamas":                          "BHS",
	"Bahrain":                          "BHR",
	"Bangladesh":                       "BGD",
	"Barbados":                         "BRB",
	"Belarus":                          "BLR",
	"Belgium":                          "BEL",
	"Belize":                           "BLZ",
	"Benin":                            "BEN",
	"Bhutan":                           "BTN",
	"Bolivia":                          "BOL",
	"Bosnia And Herzegovina":           "BIH",
	"Botswana":                         "BWA",
	"Brazil":                           "BRA",
	"Brunei":                           "BRN",
	"Bulgaria":                         "BGR",
	"Burkina Faso":                     "BFA",
	"Burundi":                          "BDI",
	"Cambodia":                         "KHM",
	"Cameroon":                         "CMR",
	"Canada":                           "CAN",
	"Cape Verde":                       "CPV",
	"Central African Republic":         "CAF",
	"Chad":                             "TCD",
	"Chile":                            "CHL",
	"China":                            "CHN",
	"Colombia":                         "COL",
	"Comoros":                          "COM",
	"Costa Rica":                       "CRI",
	"Croatia":                          "HRV",
	"Cuba":                             "CUB",
	"Cyprus":                           "CYP",
	"Czechia":                          "CZE",
	"Côte d'Ivoire":                    "CIV",
	"Democratic Republic Of The Congo": "COD",
	"Denmark":                          "DNK",
	"Djibouti":                         "DJI",
	"Dominica":                         "DMA",
	"Dominican Republic":               "DOM",
	"Ecuador":                          "ECU",
	"Egypt":                            "EGY",
	"El Salvador":                      "SLV",
	"Equatorial Guinea":                "GNQ",
	"Eritrea":                          "ERI",
	"Estonia":                          "EST",
	"Ethiopia":                         "ETH",
	"Faroe Islands":                    "FRO",
	"Fiji":                             "FJI",
	"Finland":                          "FIN",
	"France":                           "FRA",
	"French Guiana":                    "GUF",
	"Gabon":                            "GAB",
	"Gambia":                           "GMB",
	"Georgia":                          "GEO",
	"Germany":                          "DEU",
	"Ghana":                            "GHA",
	"Greece":                           "GRC",
	"Grenada":                          "GRD",
	"Guadeloupe":                       "GLP",
	"Guatemala":                        "GTM",
	"Guinea":                           "GIN",
	"Guinea-Bissau":                    "GNB",
	"Guyana":                           "GUY",
	"Haiti":                            "HTI",
	"Honduras":                         "HND",
	"Hungary":                          "HUN",
	"Iceland":                          "ISL",
	"India":                            "IND",
	"Indonesia":                        "IDN",
	"Iran":                             "IRN",
	"Iraq":                             "IRQ",
	"Ireland":                          "IRL",
	"Israel":                           "ISR",
	"Italy":                            "ITA",
	"Jamaica":                          "JAM",
	"Japan":                            "JPN",
	"Jordan":                           "JOR",
	"Kazakhstan":                       "KAZ",
	"Kenya":                            "KEN",
	"Kosovo":                           "XKX",
	"Kuwait":                           "KWT",
	"Kyrgyzstan":                       "KGZ",
	"Laos":                             "LAO",
	"Latvia":                           "LVA",
	"Lebanon":                          "LBN",
	"Lesotho":                          "LSO",
	"Liberia":                          "LBR",
	"Liechtenstein":                    "LIE",
	"Lithuania":                        "LTU",
	"Luxembourg":                       "LUX",
	"Madagascar":                       "MDG",
	"Malawi":                           "MWI",
	"Malaysia":                         "MYS",
	"Mali":                             "MLI",
	"Malta":                            "MLT",
	"Martinique":                       "MTQ",
	"Mauritania":                       "MRT",
	"Mauritius":                        "MUS",
	"Mexico":                           "MEX",
	"Micronesia":                       "FSM",
	"Moldova":                          "MDA",
	"Mongolia":                         "MNG",
	"Montenegro":                       "MNE",
	"Morocco":                          "MAR",
	"Mozambique":                       "MOZ",
	"Myanmar":                          "MMR",
	"Namibia":                          "NAM",
	"Nepal":                            "NPL",
	"Netherlands":                      "NLD",
	"New Caledonia":                    "NCL",
	"New Zealand":                      "NZL",
	"Nicaragua":                        "NIC",
	"Niger":                            "NER",
	"Nigeria":                          "NGA",
	"North Korea":                      "PRK",
	"North Macedonia":                  "MKD",
	"Norway":                           "NOR",
	"Oman":                             "OMN",
	"Pakistan":                         "PAK",
	"Palestine":                        "PSE",
	"Panama":                           "PAN",
	"Papua New Guinea":                 "PNG",
	"Paraguay":                         "PRY",
	"Peru":                             "PER",
	"Philippines":                      "PHL",
	"Poland":                           "POL",
	"Portugal":                         "PRT",
	"Puerto Rico":                      "PRI",
	"Qatar":                            "QAT",
	"Republic Of The Congo":            "COG",
	"Romania":                          "ROU",
	"Russia":                           "RUS",
	"Rwanda":                           "RWA",
	"Réunion":                          "REU",
	"Saint-Barthélemy":                 "BLM",
	"Samoa":                            "WSM",
	"Saudi Arabia":                     "SAU",
	"Senegal":                          "SEN",
	"Serbia":                           "SRB",
	"Seychelles":                       "SYC",
	"Sierra Leone":                     "SLE",
	"Singapore":                        "SGP",
	"Slovakia":                         "SVK",
	"Slovenia":                         "SVN",
	"Solomon Islands":                  "SLB",
	"Somalia":                          "SOM",
	"South Africa":                     "ZAF",
	"South Korea":                      "KOR",
	"South Sudan":                      "SSD",
	"Spain":                            "ESP",
	"Sri Lanka":                        "LKA",
	"Sudan":                            "SDN",
	"Suriname":                         "SUR",
	"Swaziland":                        "SWZ",
	"Sweden":                           "SWE",
	"Switzerland":                      "CHE",
	"Syria":                            "SYR",
	"São Tomé And Príncipe":            "STP",
	"Taiwan":                           "TWN",
	"Tajikistan":                       "TJK",
	"Tanzania":                         "TZA",
	"Thailand":                         "THA",
	"Timor-Leste":                      "TLS",
	"Togo":                             "TGO",
	"Trinidad and Tobago":              "TTO",
	"Tunisia":                          "TUN",
	"Turkey":                           "TUR",
	"Turkmenistan":                     "TKM",
	"Uganda":                           "UGA",
	"Ukraine":                          "UKR",
	"United Arab Emirates":             "ARE",
	"United Kingdom":                   "GBR",
	"United States":                    "USA",
	"Uruguay":                          "URY",
	"Uzbekistan":                       "UZB",
	"Vanuatu":                          "VUT",
	"Venezuela":                        "VEN",
	"Vietnam":                          "VNM",
	"Virgin Islands, U.S.":             "VIR",
	"Yemen":                            "YEM",
	"Zambia":                           "ZMB",
	"Zimbabwe":                         "ZWE",
	"Åland":                            "ALA",
}
