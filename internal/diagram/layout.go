package diagram

import (
	"github.com/junkd0g/pokeviz/internal/scale"
)

// Margin is the space between a panel edge and its plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// OverviewLayout sizes and colours the combo chart.
type OverviewLayout struct {
	Width          float64
	Height         float64
	Margin         Margin
	HighlightColor string
	Scheme         []string
}

// RadarLayout sizes the star chart. Ceiling is the value at the tip of every
// axis, so magnitudes stay comparable across categories.
type RadarLayout struct {
	Width   float64
	Height  float64
	Margin  float64
	Ceiling float64
	Levels  int
	Color   string
}

// ParallelLayout sizes the parallel-coordinates chart.
type ParallelLayout struct {
	Width   float64
	Height  float64
	Margin  Margin
	Color   string
	Opacity float64
}

// Layout groups the settings of all three views.
type Layout struct {
	Overview OverviewLayout
	Radar    RadarLayout
	Parallel ParallelLayout
}

// DefaultLayout returns the panel sizes and colours the dashboard ships with.
func DefaultLayout() Layout {
	return Layout{
		Overview: OverviewLayout{
			Width:          960,
			Height:         500,
			Margin:         Margin{Top: 40, Right: 50, Bottom: 100, Left: 70},
			HighlightColor: "limegreen",
			Scheme:         scale.Category10,
		},
		Radar: RadarLayout{
			Width:   460,
			Height:  400,
			Margin:  40,
			Ceiling: 150,
			Levels:  5,
			Color:   "steelblue",
		},
		Parallel: ParallelLayout{
			Width:   620,
			Height:  400,
			Margin:  Margin{Top: 40, Right: 30, Bottom: 20, Left: 40},
			Color:   "steelblue",
			Opacity: 0.3,
		},
	}
}
