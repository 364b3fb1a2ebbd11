// Package metric derives normalized, chart-ready series from raw
// provider fact documents.
//
// The pipeline per symbol:
//  1. resolve the symbol to a filer identifier
//  2. fetch the company facts document
//  3. select the first reporting unit in document order
//  4. keep 10-Q records carrying a standard fiscal frame, native order
//
// Every failure collapses to ErrNoData so a comparison across many
// symbols can skip bad ones uniformly; the cause stays wrapped inside.
package metric
