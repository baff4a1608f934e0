package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/spf13/viper"
)

// Init wires viper defaults, FOREST_* environment overrides and an optional
// config file. An empty path only looks for ./forestwatch.{yaml,json,toml}.
func Init(path string) error {
	viper.SetDefault(constants.ViperAPIURLKey, constants.DefaultAPIURL)
	viper.SetDefault(constants.ViperAPITimeoutKey, constants.DefaultAPITimeout)
	viper.SetDefault(constants.ViperAPIPostTimeoutKey, constants.DefaultPostTimeout)
	viper.SetDefault(constants.ViperHTTPAddrKey, ":8080")
	viper.SetDefault(constants.ViperCORSOriginsKey, []string{"http://localhost:3000"})
	viper.SetDefault(constants.ViperDBDSNKey, "")
	viper.SetDefault(constants.ViperSecretKey, "")
	viper.SetDefault(constants.ViperLogLevelKey, "info")
	viper.SetDefault(constants.ViperTrendCountriesKey, constants.DefaultTrendCountries)
	viper.SetDefault(constants.ViperCacheSweepKey, time.Minute)
	viper.SetDefault(constants.ViperShutdownTimeoutKey, 10*time.Second)

	viper.SetEnvPrefix("forest")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("forestwatch")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	return nil
}

// APIURL is the remote data API base, without a trailing slash.
func APIURL() string {
	return strings.TrimRight(viper.GetString(constants.ViperAPIURLKey), "/")
}

func APITimeout() time.Duration {
	return viper.GetDuration(constants.ViperAPITimeoutKey)
}

func PostTimeout() time.Duration {
	return viper.GetDuration(constants.ViperAPIPostTimeoutKey)
}

func TrendCountries() []string {
	return viper.GetStringSlice(constants.ViperTrendCountriesKey)
}

func HTTPAddr() string {
	return viper.GetString(constants.ViperHTTPAddrKey)
}

// DBDSN is empty when reports are not archived.
func DBDSN() string {
	return viper.GetString(constants.ViperDBDSNKey)
}

func LogLevel() string {
	return viper.GetString(constants.ViperLogLevelKey)
}

func CacheSweepInterval() time.Duration {
	return viper.GetDuration(constants.ViperCacheSweepKey)
}

func ShutdownTimeout() time.Duration {
	return viper.GetDuration(constants.ViperShutdownTimeoutKey)
}
