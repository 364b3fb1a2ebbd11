// Package edgar provides the client for the filings provider's company
// facts API.
//
// Endpoint:
//   - https://data.sec.gov/api/xbrl/companyfacts/CIK{10-digit-id}.json
//
// The provider requires a User-Agent header identifying the caller and
// returns one JSON document per filer: every reported metric keyed by
// taxonomy namespace, metric name, and reporting unit. The unit level
// preserves the document's key order on decode (see UnitMap), which
// callers rely on for deterministic unit selection.
package edgar
