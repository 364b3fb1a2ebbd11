package metric

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/js5810/VisualizeFilings/internal/edgar"
	"github.com/js5810/VisualizeFilings/internal/model"
)

// ErrNoData indicates no usable series exists for a symbol/metric pair.
// It covers every failure on the way to a series: unknown symbol, fetch
// failure, malformed document, absent taxonomy or metric, no units, and
// an empty filtered series.
var ErrNoData = errors.New("no data")

// quarterlyForm is the form type comparable series are restricted to.
const quarterlyForm = "10-Q"

// Resolver maps a trading symbol to a filer identifier.
type Resolver interface {
	Resolve(symbol string) (string, error)
}

// FactsSource fetches a filer's full fact document.
type FactsSource interface {
	CompanyFacts(ctx context.Context, cik string) (*edgar.CompanyFacts, error)
}

// Fetcher turns provider fact documents into normalized metric series.
type Fetcher struct {
	resolver Resolver
	facts    FactsSource
	logger   *slog.Logger
}

// NewFetcher creates a Fetcher reading identifiers from resolver and
// fact documents from facts.
func NewFetcher(resolver Resolver, facts FactsSource, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Fetcher{
		resolver: resolver,
		facts:    facts,
		logger:   logger,
	}
}

// Fetch returns the normalized series for one symbol and metric: the
// first reporting unit in the fact document, restricted to quarterly
// records with a standard fiscal frame, in the provider's native order.
//
// Failures wrap ErrNoData with the cause kept inspectable, so
// errors.Is(err, catalog.ErrNotFound) still identifies an unknown symbol
// behind the uniform no-data outcome.
func (f *Fetcher) Fetch(ctx context.Context, symbol, metricName string) (model.Series, error) {
	cik, err := f.resolver.Resolve(symbol)
	if err != nil {
		return model.Series{}, fmt.Errorf("%w for %s %s: %w", ErrNoData, symbol, metricName, err)
	}

	facts, err := f.facts.CompanyFacts(ctx, cik)
	if err != nil {
		return model.Series{}, fmt.Errorf("%w for %s %s: %w", ErrNoData, symbol, metricName, err)
	}

	gaap, ok := facts.Facts[edgar.GAAPTaxonomy]
	if !ok {
		return model.Series{}, fmt.Errorf("%w for %s %s: taxonomy %q absent", ErrNoData, symbol, metricName, edgar.GAAPTaxonomy)
	}

	fact, ok := gaap[metricName]
	if !ok {
		return model.Series{}, fmt.Errorf("%w for %s %s: metric not reported", ErrNoData, symbol, metricName)
	}

	// First unit in document order. Metrics reported in several units
	// lose everything after the first; a known approximation.
	unit, records, ok := fact.Units.First()
	if !ok {
		return model.Series{}, fmt.Errorf("%w for %s %s: no reporting units", ErrNoData, symbol, metricName)
	}

	filtered := filterQuarterly(records)
	if len(filtered) == 0 {
		return model.Series{}, fmt.Errorf("%w for %s %s: no framed quarterly records in unit %q", ErrNoData, symbol, metricName, unit)
	}

	f.logger.Debug("fetched metric series",
		"symbol", symbol,
		"metric", metricName,
		"unit", unit,
		"points", len(filtered),
	)

	return model.Series{
		Symbol: symbol,
		Metric: metricName,
		Unit:   unit,
		Points: toPoints(filtered),
	}, nil
}

// filterQuarterly keeps records with form "10-Q" and a standard fiscal
// frame, preserving native order. No other validation: duplicate or
// out-of-order end dates pass through.
func filterQuarterly(records []edgar.FactRecord) []edgar.FactRecord {
	out := make([]edgar.FactRecord, 0, len(records))
	for _, r := range records {
		if r.Form == quarterlyForm && r.HasFrame() {
			out = append(out, r)
		}
	}
	return out
}

func toPoints(records []edgar.FactRecord) []model.Point {
	pts := make([]model.Point, len(records))
	for i, r := range records {
		pts[i] = model.Point{End: r.End, Value: r.Value}
	}
	return pts
}
