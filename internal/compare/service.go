package compare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/js5810/VisualizeFilings/internal/chart"
	"github.com/js5810/VisualizeFilings/internal/finnhub"
	"github.com/js5810/VisualizeFilings/internal/model"
)

// ErrNoSeries indicates no company in a comparison produced a usable
// series, leaving nothing to chart.
var ErrNoSeries = errors.New("no usable series")

// MetricSource provides one normalized quarterly series per company.
type MetricSource interface {
	Fetch(ctx context.Context, symbol, metricName string) (model.Series, error)
}

// PeerSource expands a symbol into its peer group.
type PeerSource interface {
	Peers(ctx context.Context, symbol string, grouping finnhub.Grouping) ([]string, error)
}

// IndustrySource lists the member symbols of a named industry.
type IndustrySource interface {
	Symbols(industry string) ([]string, error)
}

// Viewer presents a finished chart to the user.
type Viewer interface {
	Show(fig chart.Renderable, kind string) (string, error)
}

// Service builds comparison charts from normalized filing data.
type Service struct {
	metrics    MetricSource
	peers      PeerSource
	industries IndustrySource
	viewer     Viewer
	logger     *slog.Logger
}

// New creates a Service.
func New(metrics MetricSource, peers PeerSource, industries IndustrySource, viewer Viewer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		metrics:    metrics,
		peers:      peers,
		industries: industries,
		viewer:     viewer,
		logger:     logger,
	}
}

// Line charts each company's full metric history as a connected line.
func (s *Service) Line(ctx context.Context, metricName string, symbols []string) error {
	list, err := s.seriesFor(ctx, metricName, symbols)
	if err != nil {
		return err
	}

	_, err = s.viewer.Show(chart.Line(metricName, list), "line")
	return err
}

// Area charts the same histories stacked, so the band heights show each
// company's share of the group total per period.
func (s *Service) Area(ctx context.Context, metricName string, symbols []string) error {
	list, err := s.seriesFor(ctx, metricName, symbols)
	if err != nil {
		return err
	}

	_, err = s.viewer.Show(chart.Area(metricName, list), "area")
	return err
}

// Pie charts each company's most recent reported value as a slice of
// the group total.
func (s *Service) Pie(ctx context.Context, metricName string, symbols []string) error {
	list, err := s.seriesFor(ctx, metricName, symbols)
	if err != nil {
		return err
	}

	_, err = s.viewer.Show(chart.Pie(metricName, latestValues(list)), "pie")
	return err
}

// Scatter charts one metric against another, one point per company from
// that company's most recent values. A company missing either metric is
// skipped.
func (s *Service) Scatter(ctx context.Context, xMetric, yMetric string, symbols []string) error {
	syms, err := s.expand(ctx, symbols)
	if err != nil {
		return err
	}

	var (
		samples      []chart.Sample
		xUnit, yUnit string
	)
	for _, symbol := range syms {
		xs, err := s.metrics.Fetch(ctx, symbol, xMetric)
		if err != nil {
			s.logger.Warn("skipping symbol",
				"symbol", symbol,
				"metric", xMetric,
				"err", err,
			)
			continue
		}

		ys, err := s.metrics.Fetch(ctx, symbol, yMetric)
		if err != nil {
			s.logger.Warn("skipping symbol",
				"symbol", symbol,
				"metric", yMetric,
				"err", err,
			)
			continue
		}

		xp, xok := xs.Last()
		yp, yok := ys.Last()
		if !xok || !yok {
			continue
		}

		if xUnit == "" {
			xUnit, yUnit = xs.Unit, ys.Unit
		}
		samples = append(samples, chart.Sample{Symbol: symbol, X: xp.Value, Y: yp.Value})
	}

	if len(samples) == 0 {
		return fmt.Errorf("%w for %s vs %s", ErrNoSeries, xMetric, yMetric)
	}

	_, err = s.viewer.Show(chart.Scatter(xMetric, xUnit, yMetric, yUnit, samples), "scatter")
	return err
}

// Histogram charts the distribution of most recent values across whole
// industries, one overlapped histogram per industry. Industries that
// resolve to no usable values are skipped.
func (s *Service) Histogram(ctx context.Context, metricName string, industries []string, bins int) error {
	var (
		groups []chart.Group
		unit   string
	)
	for _, industry := range industries {
		symbols, err := s.industries.Symbols(industry)
		if err != nil {
			s.logger.Warn("skipping industry", "industry", industry, "err", err)
			continue
		}

		list, err := s.collect(ctx, metricName, symbols)
		if err != nil {
			s.logger.Warn("skipping industry", "industry", industry, "err", err)
			continue
		}

		var values []float64
		for _, series := range list {
			if p, ok := series.Last(); ok {
				values = append(values, p.Value)
			}
		}
		if len(values) == 0 {
			continue
		}

		if unit == "" {
			unit = list[0].Unit
		}
		groups = append(groups, chart.Group{Name: industry, Values: values})
	}

	if len(groups) == 0 {
		return fmt.Errorf("%w for %s across %d industries", ErrNoSeries, metricName, len(industries))
	}

	_, err := s.viewer.Show(chart.Histogram(metricName, unit, groups, bins), "histogram")
	return err
}

// seriesFor expands the symbol list and fetches one series per company.
func (s *Service) seriesFor(ctx context.Context, metricName string, symbols []string) ([]model.Series, error) {
	syms, err := s.expand(ctx, symbols)
	if err != nil {
		return nil, err
	}
	return s.collect(ctx, metricName, syms)
}

// expand grows a single-symbol request into that company's sector peer
// group. Requests naming two or more symbols chart exactly what was
// asked.
func (s *Service) expand(ctx context.Context, symbols []string) ([]string, error) {
	if len(symbols) != 1 {
		return symbols, nil
	}

	peers, err := s.peers.Peers(ctx, symbols[0], finnhub.GroupingSector)
	if err != nil {
		return nil, fmt.Errorf("expanding %s to peers: %w", symbols[0], err)
	}

	s.logger.Info("expanded to peer group",
		"symbol", symbols[0],
		"count", len(peers),
	)

	return peers, nil
}

// collect fetches one series per symbol sequentially, dropping the
// symbols that fail so one unfetchable company does not sink the whole
// comparison.
func (s *Service) collect(ctx context.Context, metricName string, symbols []string) ([]model.Series, error) {
	results := make([]model.Result, 0, len(symbols))
	for _, symbol := range symbols {
		series, err := s.metrics.Fetch(ctx, symbol, metricName)
		results = append(results, model.Result{Symbol: symbol, Series: series, Err: err})
	}

	list, failed := model.Partition(results)
	for _, r := range failed {
		s.logger.Warn("skipping symbol",
			"symbol", r.Symbol,
			"metric", metricName,
			"err", r.Err,
		)
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("%w for %s across %d symbols", ErrNoSeries, metricName, len(symbols))
	}

	return list, nil
}

// latestValues reduces each series to its most recent observation.
func latestValues(list []model.Series) []chart.Value {
	values := make([]chart.Value, 0, len(list))
	for _, series := range list {
		if p, ok := series.Last(); ok {
			values = append(values, chart.Value{Label: series.Symbol, Value: p.Value})
		}
	}
	return values
}
