// Package chart assembles fetched metric series into renderable charts.
//
// Builders are pure: series in, configured chart out. The Viewer owns
// the side effects (write the rendered HTML, open the browser).
// Rendering itself is delegated to go-echarts.
//
// Presentation may sort dates to build a coherent axis; the series
// themselves keep their native record order throughout.
package chart
