// Package compare orchestrates comparison charts end to end: it expands
// a lone symbol into its sector peer group, fetches one normalized
// series per company, drops the companies that cannot be fetched, and
// hands the survivors to a chart builder.
//
// A comparison fails only when nothing at all could be fetched; any
// single company's failure is logged and skipped.
package compare
