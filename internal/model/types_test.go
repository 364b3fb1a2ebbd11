package model

import (
	"errors"
	"testing"
)

func TestSeriesLast(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		var s Series
		if _, ok := s.Last(); ok {
			t.Error("Last() ok = true for empty series, want false")
		}
	})

	t.Run("returns final point in native order", func(t *testing.T) {
		s := Series{
			Symbol: "TSLA",
			Metric: "EarningsPerShareBasic",
			Unit:   "USD/shares",
			Points: []Point{
				{End: "2021-03-31", Value: 0.93},
				{End: "2021-06-30", Value: 1.02},
				{End: "2021-09-30", Value: 1.44},
			},
		}

		p, ok := s.Last()
		if !ok {
			t.Fatal("Last() ok = false, want true")
		}
		if p.End != "2021-09-30" {
			t.Errorf("Last().End = %q, want %q", p.End, "2021-09-30")
		}
		if p.Value != 1.44 {
			t.Errorf("Last().Value = %v, want 1.44", p.Value)
		}
	})
}

func TestPartition(t *testing.T) {
	errBoom := errors.New("boom")

	t.Run("splits successes from failures in order", func(t *testing.T) {
		results := []Result{
			{Symbol: "TSLA", Series: Series{Symbol: "TSLA"}},
			{Symbol: "AAPL", Err: errBoom},
			{Symbol: "T", Series: Series{Symbol: "T"}},
		}

		ok, failed := Partition(results)

		if len(ok) != 2 {
			t.Fatalf("len(ok) = %d, want 2", len(ok))
		}
		if ok[0].Symbol != "TSLA" || ok[1].Symbol != "T" {
			t.Errorf("ok symbols = %q, %q; want TSLA, T", ok[0].Symbol, ok[1].Symbol)
		}
		if len(failed) != 1 {
			t.Fatalf("len(failed) = %d, want 1", len(failed))
		}
		if failed[0].Symbol != "AAPL" {
			t.Errorf("failed[0].Symbol = %q, want AAPL", failed[0].Symbol)
		}
		if !errors.Is(failed[0].Err, errBoom) {
			t.Errorf("failed[0].Err = %v, want %v", failed[0].Err, errBoom)
		}
	})

	t.Run("all successes", func(t *testing.T) {
		ok, failed := Partition([]Result{{Symbol: "TSLA"}, {Symbol: "AAPL"}})
		if len(ok) != 2 || len(failed) != 0 {
			t.Errorf("Partition = %d ok, %d failed; want 2, 0", len(ok), len(failed))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		ok, failed := Partition(nil)
		if len(ok) != 0 || len(failed) != 0 {
			t.Errorf("Partition(nil) = %d ok, %d failed; want 0, 0", len(ok), len(failed))
		}
	})
}
