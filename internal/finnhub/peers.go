package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ErrNoPeers indicates the peer query failed or returned an unusable
// payload. Every failure mode of Peers wraps this sentinel.
var ErrNoPeers = errors.New("no peers")

// Grouping selects the classification level peers are drawn from.
type Grouping string

// Grouping levels accepted by the peer endpoint.
const (
	GroupingSector      Grouping = "sector"
	GroupingIndustry    Grouping = "industry"
	GroupingSubIndustry Grouping = "subIndustry"
)

// Valid reports whether g is a grouping level the provider accepts.
func (g Grouping) Valid() bool {
	switch g {
	case GroupingSector, GroupingIndustry, GroupingSubIndustry:
		return true
	}
	return false
}

// Peers returns the peer symbols for symbol at the given grouping level.
// The provider's list is passed through as-is.
func (c *Client) Peers(ctx context.Context, symbol string, grouping Grouping) ([]string, error) {
	if c.token == "" {
		return nil, fmt.Errorf("%w: api token not configured", ErrNoPeers)
	}

	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("grouping", string(grouping))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/stock/peers?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrNoPeers, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Finnhub-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", ErrNoPeers, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrNoPeers, err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: provider status %d", ErrNoPeers, resp.StatusCode)
	}

	var peers []string
	if err := json.Unmarshal(body, &peers); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", ErrNoPeers, err)
	}

	c.logger.Debug("resolved peers",
		"symbol", symbol,
		"grouping", grouping,
		"count", len(peers),
	)

	return peers, nil
}
