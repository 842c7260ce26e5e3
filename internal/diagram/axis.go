package diagram

import (
	"math"
	"strconv"

	"github.com/junkd0g/pokeviz/internal/scale"
	"github.com/junkd0g/pokeviz/internal/scene"
)

const (
	tickSize    = 6
	tickPadding = 3
	tickCount   = 10
)

var axisStyle = scene.Style{Stroke: "black"}

// bandAxisBottom draws a category axis along y with rotated labels.
func bandAxisBottom(band *scale.Band, width, y float64) *scene.Group {
	g := &scene.Group{Class: "axis axis-bottom", Y: y}
	g.Add(&scene.Line{X1: 0, Y1: 0, X2: width, Y2: 0, Style: axisStyle})

	for _, cat := range band.Domain() {
		x, _ := band.Center(cat)
		g.Add(
			&scene.Line{X1: x, Y1: 0, X2: x, Y2: tickSize, Style: axisStyle},
			&scene.Text{
				X: x, Y: tickSize + tickPadding, Value: cat,
				Anchor: scene.AnchorEnd, Rotate: -40, DX: -0.6, DY: 0.15,
				Size: 10, Fill: "black",
			},
		)
	}
	return g
}

// linearAxis draws a vertical value axis at x. Ticks point left unless right is set.
func linearAxis(s scale.Linear, x float64, right bool) *scene.Group {
	g := &scene.Group{Class: "axis", X: x}
	g.Add(&scene.Line{X1: 0, Y1: s.Range[0], X2: 0, Y2: s.Range[1], Style: axisStyle})

	dir, anchor := -1.0, scene.AnchorEnd
	if right {
		dir, anchor = 1.0, scene.AnchorStart
	}

	for _, v := range s.Ticks(tickCount) {
		y := s.Map(v)
		g.Add(
			&scene.Line{X1: 0, Y1: y, X2: dir * tickSize, Y2: y, Style: axisStyle},
			&scene.Text{
				X: dir * (tickSize + tickPadding), Y: y, Value: formatTick(v),
				Anchor: anchor, Middle: true, Size: 10, Fill: "black",
			},
		)
	}
	return g
}

// axisTitle is a bold label rotated to run along a vertical axis.
func axisTitle(text string, x, y float64) *scene.Text {
	return &scene.Text{
		X: x, Y: y, Value: text, Anchor: scene.AnchorMiddle, Middle: true,
		Rotate: -90, Size: 14, Bold: true, Fill: "black",
	}
}

func formatTick(v float64) string {
	// Trim float noise such as 0.30000000000000004.
	r := math.Round(v*1e9) / 1e9
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// formatWhole renders a value rounded to an integer, half away from zero.
func formatWhole(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	r := math.Round(v)
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}
