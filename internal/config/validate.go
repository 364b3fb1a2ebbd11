package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.EDGAR.UserAgent == "" {
		return errors.New("edgar.user_agent is required")
	}
	if c.EDGAR.Timeout <= 0 {
		return fmt.Errorf("edgar.timeout must be positive, got %v", c.EDGAR.Timeout)
	}

	if c.Finnhub.Timeout <= 0 {
		return fmt.Errorf("finnhub.timeout must be positive, got %v", c.Finnhub.Timeout)
	}

	if c.Catalogs.CompanyTickers == "" {
		return errors.New("catalogs.company_tickers is required")
	}
	if c.Catalogs.Industries == "" {
		return errors.New("catalogs.industries is required")
	}

	return nil
}
