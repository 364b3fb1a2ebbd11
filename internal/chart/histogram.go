package chart

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultBins is the bin count used when a request does not set one.
const DefaultBins = 10

// Group is one named distribution: an industry and its members' most
// recent values.
type Group struct {
	Name   string
	Values []float64
}

// Histogram builds overlapping value distributions, one per group. All
// groups share the same bin edges so their bars line up; overlap comes
// from collapsing the bar gap and drawing translucent bars.
func Histogram(metricName, unit string, groups []Group, bins int) *charts.Bar {
	if bins <= 0 {
		bins = DefaultBins
	}
	title := metricName + " Distribution"

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: axisLabel(metricName, unit)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Companies"}),
	)

	lo, hi, ok := valueRange(groups)
	if !ok {
		return bar
	}

	edges := binEdges(lo, hi, bins)
	bar.SetXAxis(binLabels(edges))

	for _, g := range groups {
		counts := binCounts(g.Values, edges)
		data := make([]opts.BarData, len(counts))
		for i, n := range counts {
			data[i] = opts.BarData{Value: n}
		}
		bar.AddSeries(g.Name, data,
			charts.WithBarChartOpts(opts.BarChart{BarGap: "-100%"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Opacity: 0.6}),
		)
	}

	return bar
}

// valueRange returns the min and max across all groups. ok is false when
// no group has any value.
func valueRange(groups []Group) (lo, hi float64, ok bool) {
	for _, g := range groups {
		for _, v := range g.Values {
			if !ok {
				lo, hi, ok = v, v, true
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi, ok
}

// binEdges returns bins+1 evenly spaced edges spanning [lo, hi]. A
// degenerate range (every value equal) is widened so the single value
// still lands inside a bin.
func binEdges(lo, hi float64, bins int) []float64 {
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := make([]float64, bins+1)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	// Pin the last edge; accumulated float error must not exclude the max.
	edges[bins] = hi
	return edges
}

// binCounts buckets values into half-open bins [e(i), e(i+1)), with the
// final bin closed on both ends.
func binCounts(values []float64, edges []float64) []int {
	counts := make([]int, len(edges)-1)
	last := len(counts) - 1
	for _, v := range values {
		for i := range counts {
			if v >= edges[i] && (v < edges[i+1] || (i == last && v <= edges[i+1])) {
				counts[i]++
				break
			}
		}
	}
	return counts
}

// binLabels captions each bin with its interval.
func binLabels(edges []float64) []string {
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("[%.4g, %.4g)", edges[i], edges[i+1])
	}
	return labels
}
