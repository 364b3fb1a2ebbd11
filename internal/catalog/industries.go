package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Industries maps industry names to their member symbols. Histogram
// requests resolve symbol lists here instead of through the peer
// provider. Read-only after load.
type Industries struct {
	groups map[string][]string
}

// LoadIndustries reads the industry catalog at path: a JSON object
// mapping industry name to an array of member symbols.
func LoadIndustries(path string) (*Industries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read industry catalog: %w", err)
	}

	var groups map[string][]string
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("parse industry catalog: %w", err)
	}

	return &Industries{groups: groups}, nil
}

// Symbols returns the member symbols for industry, or ErrNotFound.
func (i *Industries) Symbols(industry string) ([]string, error) {
	syms, ok := i.groups[industry]
	if !ok {
		return nil, fmt.Errorf("industry %q: %w", industry, ErrNotFound)
	}
	return syms, nil
}

// Len returns the number of industries in the catalog.
func (i *Industries) Len() int {
	return len(i.groups)
}
