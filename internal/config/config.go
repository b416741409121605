package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`

	LineChannelID     string `mapstructure:"LINE_CHANNEL_ID"`
	LineChannelSecret string `mapstructure:"LINE_CHANNEL_SECRET"`
	LineChannelToken  string `mapstructure:"LINE_CHANNEL_TOKEN"`

	CaseDataURL string        `mapstructure:"CASE_DATA_URL"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`

	GeocoderBackend       string `mapstructure:"GEOCODER_BACKEND"`
	GeocoderTokenStrategy string `mapstructure:"GEOCODER_TOKEN_STRATEGY"`
	NominatimURL          string `mapstructure:"NOMINATIM_URL"`
	NominatimUserAgent    string `mapstructure:"NOMINATIM_USER_AGENT"`

	DBSource string `mapstructure:"DB_SOURCE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogPretty bool   `mapstructure:"LOG_PRETTY"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":          "0.0.0.0:8080",
	"GIN_MODE":                "release",
	"LINE_CHANNEL_ID":         "",
	"LINE_CHANNEL_SECRET":     "",
	"LINE_CHANNEL_TOKEN":      "",
	"CASE_DATA_URL":           "https://api.apify.com/v2/key-value-stores/YbboJrL3cgVfkV1am/records/LATEST?disableRedirect=true",
	"HTTP_TIMEOUT":            "10s",
	"GEOCODER_BACKEND":        "nominatim",
	"GEOCODER_TOKEN_STRATEGY": "first",
	"NOMINATIM_URL":           "https://nominatim.openstreetmap.org",
	"NOMINATIM_USER_AGENT":    "covid-19-bot/1.0",
	"DB_SOURCE":               "",
	"LOG_LEVEL":               "info",
	"LOG_PRETTY":              false,
}

// LoadConfig reads configuration from app.env in path, if present, and from the environment.
// Environment variables take precedence.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode: %w", err)
	}
	return config, nil
}

// Validate reports missing credentials and unknown option values.
// cmd/importer only needs DB_SOURCE and does not call it.
func (c Config) Validate() error {
	var errs []error
	if c.LineChannelSecret == "" {
		errs = append(errs, errors.New("LINE_CHANNEL_SECRET is required"))
	}
	if c.LineChannelToken == "" {
		errs = append(errs, errors.New("LINE_CHANNEL_TOKEN is required"))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_TIMEOUT must be positive"))
	}

	switch c.GeocoderBackend {
	case "nominatim":
	case "postgis":
		if c.DBSource == "" {
			errs = append(errs, errors.New("DB_SOURCE is required for the postgis geocoder"))
		}
	default:
		errs = append(errs, fmt.Errorf("GEOCODER_BACKEND %q is not one of nominatim, postgis", c.GeocoderBackend))
	}

	switch c.GeocoderTokenStrategy {
	case "first", "last":
	default:
		errs = append(errs, fmt.Errorf("GEOCODER_TOKEN_STRATEGY %q is not one of first, last", c.GeocoderTokenStrategy))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
