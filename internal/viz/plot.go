// Package viz renders signal and plant traces as terminal plots.
package viz

import (
	"github.com/guptarohit/asciigraph"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 12
)

// Trace plots a single series with a caption.
func Trace(data []float64, caption string, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// TracePair plots input and output on shared axes, input dimmed.
func TracePair(input, output []float64, caption string, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return asciigraph.PlotMany([][]float64{input, output},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Gray, asciigraph.Default),
	)
}
