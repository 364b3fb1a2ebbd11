package model

// -----------------------------------------------------------------------------
// Series Types
// -----------------------------------------------------------------------------

// Point is one reported observation in a metric series.
type Point struct {
	End   string  // Report period end date ("2021-03-31")
	Value float64 // Reported value in the series unit
}

// Series is the normalized result of fetching one metric for one symbol:
// quarterly records carrying a standard fiscal frame, in the provider's
// native order, tagged with the selected reporting unit.
type Series struct {
	Symbol string  // Trading ticker (e.g., "TSLA")
	Metric string  // Taxonomy metric name (e.g., "EarningsPerShareBasic")
	Unit   string  // Selected reporting unit label (e.g., "USD/shares")
	Points []Point // Observations in native provider order, never re-sorted
}

// Last returns the final observation in native order, which is the most
// recently reported value. ok is false for an empty series.
func (s Series) Last() (p Point, ok bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// -----------------------------------------------------------------------------
// Per-Symbol Outcomes
// -----------------------------------------------------------------------------

// Result is the typed outcome of one symbol's fetch within a comparison
// set. Exactly one of Series or Err is meaningful.
type Result struct {
	Symbol string // Symbol the fetch was attempted for
	Series Series // Populated on success
	Err    error  // Non-nil on failure
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Partition splits results into successful series and failed results,
// both in input order.
func Partition(results []Result) (ok []Series, failed []Result) {
	for _, r := range results {
		if r.OK() {
			ok = append(ok, r.Series)
		} else {
			failed = append(failed, r)
		}
	}
	return ok, failed
}
