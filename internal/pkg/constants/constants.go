package constants

import "time"

const (
	ViperAPIURLKey          = "api.url"
	ViperAPITimeoutKey      = "api.timeout"
	ViperAPIPostTimeoutKey  = "api.post_timeout"
	ViperHTTPAddrKey        = "http.addr"
	ViperCORSOriginsKey     = "cors.origins"
	ViperDBDSNKey           = "db.dsn"
	ViperSecretKey          = "secret_key"
	ViperLogLevelKey        = "log.level"
	ViperTrendCountriesKey  = "global.trend_countries"
	ViperCacheSweepKey      = "cache.sweep_interval"
	ViperShutdownTimeoutKey = "http.shutdown_timeout"
)

const (
	DefaultAPIURL      = "http://98.86.169.128"
	DefaultAPITimeout  = 30 * time.Second
	DefaultPostTimeout = 60 * time.Second
)

const (
	CookieKeySecretToken = "secret_token"
	CtxKeyRequestID      = "request_id"
)

// DefaultTrendCountries are the countries summed into the global loss trend.
var DefaultTrendCountries = []string{
	"Brazil",
	"Indonesia",
	"Democratic Republic Of The Congo",
	"Bolivia",
	"Peru",
}
