// Package model defines shared data types used across the filings visualizer.
//
// Conventions:
//   - Dates: calendar-date strings exactly as reported ("2021-03-31")
//   - Values: float64 as reported; no unit conversion is performed
//   - Units: provider unit labels (e.g., "USD", "USD/shares"), never parsed
//   - Symbols: trading tickers as they appear in the company catalog
package model
