package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is returned when a lookup key is absent from a catalog.
var ErrNotFound = errors.New("not in catalog")

// Companies maps trading symbols to filer identifiers. Built once from the
// company catalog file; read-only afterwards, so it is safe to share.
type Companies struct {
	ids map[string]string
}

// companyCatalog mirrors the catalog file: a fields header plus
// [identifier, name, symbol, exchange] tuples under "data".
type companyCatalog struct {
	Fields []string            `json:"fields"`
	Data   [][]json.RawMessage `json:"data"`
}

// LoadCompanies reads the company catalog at path and builds the
// symbol → identifier map. Identifiers may appear as JSON numbers or
// strings; both are kept as decimal strings.
func LoadCompanies(path string) (*Companies, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read company catalog: %w", err)
	}

	var doc companyCatalog
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse company catalog: %w", err)
	}

	ids := make(map[string]string, len(doc.Data))
	for i, row := range doc.Data {
		if len(row) < 3 {
			return nil, fmt.Errorf("company catalog row %d: want [identifier, name, symbol, exchange], got %d fields", i, len(row))
		}

		id, err := identifierString(row[0])
		if err != nil {
			return nil, fmt.Errorf("company catalog row %d: %w", i, err)
		}

		var symbol string
		if err := json.Unmarshal(row[2], &symbol); err != nil {
			return nil, fmt.Errorf("company catalog row %d: symbol: %w", i, err)
		}

		ids[symbol] = id
	}

	return &Companies{ids: ids}, nil
}

// Resolve returns the filer identifier for symbol, or ErrNotFound.
func (c *Companies) Resolve(symbol string) (string, error) {
	id, ok := c.ids[symbol]
	if !ok {
		return "", fmt.Errorf("symbol %q: %w", symbol, ErrNotFound)
	}
	return id, nil
}

// Len returns the number of catalog entries.
func (c *Companies) Len() int {
	return len(c.ids)
}

// identifierString normalizes a tuple identifier, which the catalog may
// encode as either a JSON number or a string.
func identifierString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}

	return "", fmt.Errorf("identifier %s is neither string nor number", raw)
}
