package viz

import (
	"math"

	"github.com/guptarohit/asciigraph"
)

// cleanLogs drops NaN entries and pins infinities just outside the
// finite range so an exact zero residual does not break the chart.
func cleanLogs(logs []float64) []float64 {
	floor := math.Inf(1)
	for _, v := range logs {
		if !math.IsInf(v, 0) && !math.IsNaN(v) && v < floor {
			floor = v
		}
	}
	if math.IsInf(floor, 1) {
		return nil
	}

	data := make([]float64, 0, len(logs))
	for _, v := range logs {
		switch {
		case math.IsNaN(v):
			continue
		case math.IsInf(v, -1):
			v = floor - 2
		case math.IsInf(v, 1):
			continue
		}
		data = append(data, v)
	}
	return data
}

// ResidualPlot charts log10 |f(x_k)| against the step index. Cubic
// convergence shows as a line whose downward slope triples every step.
func ResidualPlot(logs []float64, width, height int, caption string) string {
	data := cleanLogs(logs)
	if len(data) < 2 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// SeriesPlot charts one finite data series against its index.
func SeriesPlot(values []float64, width, height int, caption string) string {
	if len(values) < 2 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// ComparePlot charts several residual histories in one frame, one color
// per series. Labels pair with series by index; the label of a series
// dropped by cleaning is dropped with it.
func ComparePlot(series [][]float64, labels []string, width, height int, caption string) string {
	colors := []asciigraph.AnsiColor{
		asciigraph.Red,
		asciigraph.Green,
		asciigraph.Blue,
		asciigraph.Yellow,
		asciigraph.Magenta,
	}

	data := make([][]float64, 0, len(series))
	kept := make([]string, 0, len(labels))
	for i, s := range series {
		cleaned := cleanLogs(s)
		if len(cleaned) < 2 {
			continue
		}
		data = append(data, cleaned)
		if i < len(labels) {
			kept = append(kept, labels[i])
		}
	}
	if len(data) == 0 {
		return ""
	}
	if len(data) > len(colors) {
		data = data[:len(colors)]
	}
	if len(kept) > len(data) {
		kept = kept[:len(data)]
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors[:len(data)]...),
		asciigraph.SeriesLegends(kept...),
	)
}
