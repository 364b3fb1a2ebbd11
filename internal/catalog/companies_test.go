package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTempFile creates a temporary file with the given content.
func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadCompanies(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		path := writeTempFile(t, `{
			"fields": ["cik", "name", "ticker", "exchange"],
			"data": [
				[320193, "Apple Inc.", "AAPL", "Nasdaq"],
				[1318605, "Tesla, Inc.", "TSLA", "Nasdaq"],
				[732717, "AT&T Inc.", "T", "NYSE"]
			]
		}`)

		c, err := LoadCompanies(path)
		if err != nil {
			t.Fatalf("LoadCompanies() error = %v", err)
		}
		if c.Len() != 3 {
			t.Errorf("Len() = %d, want 3", c.Len())
		}

		id, err := c.Resolve("TSLA")
		if err != nil {
			t.Fatalf("Resolve(TSLA) error = %v", err)
		}
		if id != "1318605" {
			t.Errorf("Resolve(TSLA) = %q, want %q", id, "1318605")
		}
	})

	t.Run("string identifiers", func(t *testing.T) {
		path := writeTempFile(t, `{
			"data": [["0000320193", "Apple Inc.", "AAPL", "Nasdaq"]]
		}`)

		c, err := LoadCompanies(path)
		if err != nil {
			t.Fatalf("LoadCompanies() error = %v", err)
		}

		id, err := c.Resolve("AAPL")
		if err != nil {
			t.Fatalf("Resolve(AAPL) error = %v", err)
		}
		if id != "0000320193" {
			t.Errorf("Resolve(AAPL) = %q, want %q", id, "0000320193")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCompanies(filepath.Join(t.TempDir(), "nope.json"))
		if err == nil {
			t.Fatal("LoadCompanies() expected error for missing file")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeTempFile(t, `{"data": [[320193,`)
		if _, err := LoadCompanies(path); err == nil {
			t.Fatal("LoadCompanies() expected error for malformed JSON")
		}
	})

	t.Run("short row", func(t *testing.T) {
		path := writeTempFile(t, `{"data": [[320193, "Apple Inc."]]}`)
		if _, err := LoadCompanies(path); err == nil {
			t.Fatal("LoadCompanies() expected error for short row")
		}
	})

	t.Run("non-string symbol", func(t *testing.T) {
		path := writeTempFile(t, `{"data": [[320193, "Apple Inc.", 42, "Nasdaq"]]}`)
		if _, err := LoadCompanies(path); err == nil {
			t.Fatal("LoadCompanies() expected error for non-string symbol")
		}
	})
}

func TestCompaniesResolve(t *testing.T) {
	path := writeTempFile(t, `{
		"data": [[320193, "Apple Inc.", "AAPL", "Nasdaq"]]
	}`)

	c, err := LoadCompanies(path)
	if err != nil {
		t.Fatalf("LoadCompanies() error = %v", err)
	}

	t.Run("unknown symbol is ErrNotFound", func(t *testing.T) {
		_, err := c.Resolve("ZZZZ")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(ZZZZ) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("error names the symbol", func(t *testing.T) {
		_, err := c.Resolve("ZZZZ")
		if err == nil || !strings.Contains(err.Error(), "ZZZZ") {
			t.Errorf("Resolve(ZZZZ) error = %v, want mention of ZZZZ", err)
		}
	})
}
