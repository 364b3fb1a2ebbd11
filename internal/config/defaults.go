package config

import (
	"os"
	"time"
)

// Default values for optional configuration fields.
const (
	DefaultEDGARBaseURL   = "https://data.sec.gov"
	DefaultEDGARTimeout   = 30 * time.Second
	DefaultFinnhubBaseURL = "https://finnhub.io"
	DefaultFinnhubTimeout = 10 * time.Second
	DefaultOutputDir      = "charts"
)

// Environment fallbacks consulted when the config file omits a value.
const (
	EnvUserAgent  = "USER_AGENT"
	EnvFinnhubKey = "FINNHUB_API_KEY"
)

func (c *Config) applyDefaults() {
	// EDGAR defaults
	if c.EDGAR.BaseURL == "" {
		c.EDGAR.BaseURL = DefaultEDGARBaseURL
	}
	if c.EDGAR.UserAgent == "" {
		c.EDGAR.UserAgent = os.Getenv(EnvUserAgent)
	}
	if c.EDGAR.Timeout == 0 {
		c.EDGAR.Timeout = DefaultEDGARTimeout
	}

	// Finnhub defaults
	if c.Finnhub.BaseURL == "" {
		c.Finnhub.BaseURL = DefaultFinnhubBaseURL
	}
	if c.Finnhub.APIKey == "" {
		c.Finnhub.APIKey = os.Getenv(EnvFinnhubKey)
	}
	if c.Finnhub.Timeout == 0 {
		c.Finnhub.Timeout = DefaultFinnhubTimeout
	}

	// Chart defaults
	if c.Charts.OutputDir == "" {
		c.Charts.OutputDir = DefaultOutputDir
	}
}
