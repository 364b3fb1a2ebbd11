// Package finnhub provides the client for the market-data provider's
// peer endpoint.
//
// Endpoint:
//   - https://finnhub.io/api/v1/stock/peers?symbol=X&grouping=Y
//
// Authentication is an X-Finnhub-Token header. The peer list is returned
// exactly as the provider sends it: no dedup, no filtering, and the
// queried symbol may appear in its own peer list.
package finnhub
