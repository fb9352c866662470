package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
)

// Theme-dependent styles are built per render so the T key takes effect
// immediately.

func headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).MarginBottom(1)
}

func curveStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Curve)
}

func chartStyle() lipgloss.Style {
	return graphStyle.Foreground(CurrentTheme.Graph)
}

func goodStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Good).Bold(true)
}

func badStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Bad).Bold(true)
}

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
}

// ResidualSpark renders log10 residuals as a one-line sparkline. Lower
// is better, so the bars shrink as the iteration converges. An exact
// zero residual logs as -Inf and draws as the lowest bar.
func ResidualSpark(logs []float64, width int) string {
	if len(logs) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range logs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		return strings.Repeat("▁", min(width, len(logs)))
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(logs) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(logs); i++ {
		v := logs[i*step]
		if math.IsInf(v, -1) {
			v = lo
		} else if math.IsNaN(v) || math.IsInf(v, 1) {
			v = hi
		}
		idx := int((v - lo) / rng * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

// Separator renders a dim horizontal rule.
func Separator(width int) string {
	if width < 3 {
		width = 3
	}
	mid := width / 2
	return dimStyle.Render(strings.Repeat("─", mid-1) + "◆" + strings.Repeat("─", width-mid-1))
}
