package edgar

import (
	"context"
	"fmt"
	"strings"
)

// GAAPTaxonomy is the taxonomy namespace the fetch layer reads from.
const GAAPTaxonomy = "us-gaap"

// CompanyFacts fetches the full fact document for one filer. The
// identifier is zero-padded to the 10 digits the endpoint expects.
func (c *Client) CompanyFacts(ctx context.Context, cik string) (*CompanyFacts, error) {
	padded := PadCIK(cik)
	c.logger.Debug("fetching company facts", "cik", padded)

	var facts CompanyFacts
	if err := c.get(ctx, fmt.Sprintf("/api/xbrl/companyfacts/CIK%s.json", padded), nil, &facts); err != nil {
		return nil, err
	}

	return &facts, nil
}

// PadCIK normalizes a filer identifier to 10 digits with leading zeros,
// the form the company facts endpoint requires in its path.
func PadCIK(cik string) string {
	return fmt.Sprintf("%010s", strings.TrimLeft(cik, "0"))
}
