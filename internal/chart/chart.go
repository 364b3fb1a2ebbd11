package chart

import (
	"fmt"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/js5810/VisualizeFilings/internal/model"
)

const (
	chartWidth  = "1200px"
	chartHeight = "600px"
)

// Value is one labeled quantity, a slice of a comparison: a symbol and
// its most recent reported value.
type Value struct {
	Label string
	Value float64
}

// Sample is one symbol's (x, y) pair of most recent values for a metric
// pair.
type Sample struct {
	Symbol string
	X, Y   float64
}

// Line builds a multi-series line chart of full metric histories, one
// line per symbol.
func Line(metricName string, series []model.Series) *charts.Line {
	title := metricName + " Over Time"

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisLabel(metricName, unitOf(series))}),
	)

	line.SetXAxis(unionDates(series))
	for _, s := range series {
		line.AddSeries(s.Symbol, seriesPairs(s))
	}

	return line
}

// Area builds a stacked area chart. Stacking needs every series aligned
// on one shared axis, so dates a symbol never reported become explicit
// nulls.
func Area(metricName string, series []model.Series) *charts.Line {
	title := metricName + " Over Time"

	area := charts.NewLine()
	area.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisLabel(metricName, unitOf(series))}),
	)

	dates := unionDates(series)
	area.SetXAxis(dates)
	for _, s := range series {
		area.AddSeries(s.Symbol, alignedValues(s, dates),
			charts.WithLineChartOpts(opts.LineChart{Stack: "total"}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.5}),
		)
	}

	return area
}

// Pie builds a pie of each symbol's most recent reported value.
func Pie(metricName string, values []Value) *charts.Pie {
	title := metricName + " Comparison"

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	data := make([]opts.PieData, len(values))
	for i, v := range values {
		data[i] = opts.PieData{Name: v.Label, Value: v.Value}
	}

	pie.AddSeries(metricName, data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)

	return pie
}

// Scatter builds a scatter of one metric against another, one point per
// symbol from each symbol's most recent values.
func Scatter(xMetric, xUnit, yMetric, yUnit string, samples []Sample) *charts.Scatter {
	title := fmt.Sprintf("%s vs %s", xMetric, yMetric)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: axisLabel(xMetric, xUnit), Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: axisLabel(yMetric, yUnit), Type: "value", Scale: opts.Bool(true)}),
	)

	for _, s := range samples {
		sc.AddSeries(s.Symbol, []opts.ScatterData{
			{Value: []interface{}{s.X, s.Y}, SymbolSize: 14},
		})
	}

	return sc
}

// axisLabel formats an axis caption as "Metric (unit)".
func axisLabel(metric, unit string) string {
	if unit == "" {
		return metric
	}
	return fmt.Sprintf("%s (%s)", metric, unit)
}

// unitOf returns the unit label charts are captioned with: the one from
// the first fetched series. Empty when there are none.
func unitOf(series []model.Series) string {
	if len(series) == 0 {
		return ""
	}
	return series[0].Unit
}

// unionDates merges every series' end dates into one ascending axis.
// ISO dates sort lexicographically, so a string sort is chronological.
func unionDates(series []model.Series) []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, s := range series {
		for _, p := range s.Points {
			if _, ok := seen[p.End]; !ok {
				seen[p.End] = struct{}{}
				dates = append(dates, p.End)
			}
		}
	}
	sort.Strings(dates)
	return dates
}

// seriesPairs emits (date, value) pairs so each line connects its own
// observations even when other symbols report on different dates.
func seriesPairs(s model.Series) []opts.LineData {
	data := make([]opts.LineData, len(s.Points))
	for i, p := range s.Points {
		data[i] = opts.LineData{Value: []interface{}{p.End, p.Value}}
	}
	return data
}

// alignedValues places a series on the shared axis, with nulls where the
// symbol has no observation for a date.
func alignedValues(s model.Series, dates []string) []opts.LineData {
	byEnd := make(map[string]float64, len(s.Points))
	for _, p := range s.Points {
		byEnd[p.End] = p.Value
	}

	data := make([]opts.LineData, len(dates))
	for i, d := range dates {
		if v, ok := byEnd[d]; ok {
			data[i] = opts.LineData{Value: v}
		} else {
			data[i] = opts.LineData{Value: nil}
		}
	}
	return data
}
