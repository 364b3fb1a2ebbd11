package edgar

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CompanyFacts is the provider's full nested fact document for one filer:
// taxonomy namespace → metric name → per-unit report records.
type CompanyFacts struct {
	CIK        int64                      `json:"cik"`
	EntityName string                     `json:"entityName"`
	Facts      map[string]map[string]Fact `json:"facts"`
}

// Fact is one metric's reporting history, keyed by unit label.
type Fact struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Units       UnitMap `json:"units"`
}

// FactRecord is a single reported value.
type FactRecord struct {
	Start string  `json:"start,omitempty"` // Period start date, absent for instant values
	End   string  `json:"end"`             // Period end date
	Value float64 `json:"val"`             // Reported value
	Accn  string  `json:"accn,omitempty"`  // Accession number of the source filing
	FY    int     `json:"fy,omitempty"`    // Fiscal year of the filing
	FP    string  `json:"fp,omitempty"`    // Fiscal period of the filing (Q1..Q4, FY)
	Form  string  `json:"form"`            // Form type (e.g., "10-Q", "10-K")
	Filed string  `json:"filed,omitempty"` // Filing date
	Frame string  `json:"frame,omitempty"` // Standard fiscal frame (e.g., "CY2021Q2"), empty when absent
}

// HasFrame reports whether the record carries a standard fiscal frame.
// Only framed records are comparable across filers.
func (r FactRecord) HasFrame() bool {
	return r.Frame != ""
}

// UnitMap holds one fact's records keyed by unit label, preserving the
// document's key order. Go map iteration is randomized, so a plain map
// cannot honor "first unit in the document"; UnitMap decodes the object
// token by token and records the order it saw.
type UnitMap struct {
	names   []string
	records map[string][]FactRecord
}

// UnmarshalJSON decodes a units object, keeping key order.
func (u *UnitMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("units: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("units: expected object, got %v", tok)
	}

	u.names = nil
	u.records = make(map[string][]FactRecord)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("units: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("units: expected key, got %v", keyTok)
		}

		var recs []FactRecord
		if err := dec.Decode(&recs); err != nil {
			return fmt.Errorf("units[%s]: %w", name, err)
		}

		if _, seen := u.records[name]; !seen {
			u.names = append(u.names, name)
		}
		u.records[name] = recs
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("units: %w", err)
	}

	return nil
}

// Units returns the unit labels in document order.
func (u UnitMap) Units() []string {
	return u.names
}

// Records returns the record list for a unit label, nil if absent.
func (u UnitMap) Records(unit string) []FactRecord {
	return u.records[unit]
}

// First returns the first unit label in document order along with its
// records. ok is false when the fact has no units.
func (u UnitMap) First() (unit string, records []FactRecord, ok bool) {
	if len(u.names) == 0 {
		return "", nil, false
	}
	unit = u.names[0]
	return unit, u.records[unit], true
}

// Len returns the number of units.
func (u UnitMap) Len() int {
	return len(u.names)
}
