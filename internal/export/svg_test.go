package export_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/rootlab/internal/export"
	"github.com/san-kum/rootlab/internal/trace"
	"github.com/san-kum/rootlab/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(3, 5)

	svg := export.CanvasToSVG(c, 4)
	require.NotEmpty(t, svg)
	assert.Contains(t, svg, `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32"`)
	assert.Equal(t, 2, strings.Count(svg, "<circle"))

	assert.Empty(t, export.CanvasToSVG(nil, 4))
}

func TestCanvasToSVGEmptyCanvas(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	svg := export.CanvasToSVG(c, 4)
	assert.NotContains(t, svg, "<circle")
}

func TestResidualToSVG(t *testing.T) {
	points := []trace.Point{
		{Step: 0, Log10: 0},
		{Step: 1, Log10: -3},
		{Step: 2, Log10: -9},
		{Step: 3, Log10: -27},
	}

	svg := export.ResidualToSVG(points, 400, 300, "#00ff00")
	require.NotEmpty(t, svg)
	assert.Contains(t, svg, `width="400" height="300"`)
	assert.Contains(t, svg, `stroke="#00ff00"`)
	assert.Contains(t, svg, "<path")
	assert.Equal(t, 3, strings.Count(svg, " L"))
}

func TestResidualToSVGExactZero(t *testing.T) {
	points := []trace.Point{
		{Step: 0, Log10: -1},
		{Step: 1, Log10: math.Inf(-1)},
	}
	svg := export.ResidualToSVG(points, 400, 300, "#fff")
	require.NotEmpty(t, svg)
}

func TestResidualToSVGTooShort(t *testing.T) {
	assert.Empty(t, export.ResidualToSVG(nil, 400, 300, "#fff"))
	assert.Empty(t, export.ResidualToSVG([]trace.Point{{Log10: -1}}, 400, 300, "#fff"))
}
