// Package config loads YAML configuration with environment variable substitution.
//
// Files may use ${VAR} syntax anywhere a value appears. USER_AGENT and
// FINNHUB_API_KEY are also read directly when the file omits them.
package config
