package catalog

import (
	"errors"
	"testing"
)

func TestLoadIndustries(t *testing.T) {
	t.Run("valid catalog", func(t *testing.T) {
		path := writeTempFile(t, `{
			"Auto Manufacturers": ["TSLA", "F", "GM"],
			"Consumer Electronics": ["AAPL", "SONY"]
		}`)

		ind, err := LoadIndustries(path)
		if err != nil {
			t.Fatalf("LoadIndustries() error = %v", err)
		}
		if ind.Len() != 2 {
			t.Errorf("Len() = %d, want 2", ind.Len())
		}

		syms, err := ind.Symbols("Auto Manufacturers")
		if err != nil {
			t.Fatalf("Symbols() error = %v", err)
		}
		if len(syms) != 3 || syms[0] != "TSLA" {
			t.Errorf("Symbols() = %v, want [TSLA F GM]", syms)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadIndustries("does-not-exist.json"); err == nil {
			t.Fatal("LoadIndustries() expected error for missing file")
		}
	})

	t.Run("malformed catalog", func(t *testing.T) {
		path := writeTempFile(t, `["not", "an", "object"]`)
		if _, err := LoadIndustries(path); err == nil {
			t.Fatal("LoadIndustries() expected error for malformed catalog")
		}
	})

	t.Run("unknown industry is ErrNotFound", func(t *testing.T) {
		path := writeTempFile(t, `{"Airlines": ["DAL", "UAL"]}`)

		ind, err := LoadIndustries(path)
		if err != nil {
			t.Fatalf("LoadIndustries() error = %v", err)
		}

		if _, err := ind.Symbols("Railroads"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Symbols(Railroads) error = %v, want ErrNotFound", err)
		}
	})
}
