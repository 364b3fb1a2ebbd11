package config

import "time"

// Config is the root configuration for the filingviz CLI.
type Config struct {
	EDGAR    EDGARConfig    `yaml:"edgar"`
	Finnhub  FinnhubConfig  `yaml:"finnhub"`
	Catalogs CatalogsConfig `yaml:"catalogs"`
	Charts   ChartsConfig   `yaml:"charts"`
}

// EDGARConfig holds SEC EDGAR API settings.
type EDGARConfig struct {
	BaseURL   string        `yaml:"base_url"`
	UserAgent string        `yaml:"user_agent"` // Contact identity the SEC requires on every request
	Timeout   time.Duration `yaml:"timeout"`
}

// FinnhubConfig holds Finnhub API settings.
type FinnhubConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"` // Empty disables peer expansion
	Timeout time.Duration `yaml:"timeout"`
}

// CatalogsConfig locates the local catalog files.
type CatalogsConfig struct {
	CompanyTickers string `yaml:"company_tickers"` // SEC ticker-to-CIK catalog JSON
	Industries     string `yaml:"industries"`      // Industry membership JSON
}

// ChartsConfig holds chart output settings.
type ChartsConfig struct {
	OutputDir string `yaml:"output_dir"`
	Open      bool   `yaml:"open"` // Launch a browser for each rendered chart
}
