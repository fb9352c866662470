// Package export renders run artifacts as SVG documents.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/rootlab/internal/trace"
	"github.com/san-kum/rootlab/internal/viz"
)

// CanvasToSVG converts a braille canvas to an SVG dot grid. Dots take
// the active theme's curve color.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per cell
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per cell

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, string(viz.CurrentTheme.Curve)))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// ResidualToSVG draws the log10 residual history as a polyline, step
// index on the x axis. Exact zero residuals pin to just below the
// smallest finite value.
func ResidualToSVG(points []trace.Point, width, height int, strokeColor string) string {
	logs := make([]float64, 0, len(points))
	floor := math.Inf(1)
	for _, p := range points {
		if !math.IsInf(p.Log10, 0) && !math.IsNaN(p.Log10) && p.Log10 < floor {
			floor = p.Log10
		}
	}
	if math.IsInf(floor, 1) {
		return ""
	}
	for _, p := range points {
		v := p.Log10
		if math.IsNaN(v) || math.IsInf(v, 1) {
			continue
		}
		if math.IsInf(v, -1) {
			v = floor - 2
		}
		logs = append(logs, v)
	}
	if len(logs) < 2 {
		return ""
	}

	minY, maxY := logs[0], logs[0]
	for _, v := range logs {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range logs {
		x := float64(i) / float64(len(logs)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
