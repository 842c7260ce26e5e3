package diagram

import (
	"strconv"

	"github.com/junkd0g/pokeviz/internal/aggregate"
	"github.com/junkd0g/pokeviz/internal/scale"
	"github.com/junkd0g/pokeviz/internal/scene"
)

// headroom leaves space above the tallest bar and the highest point.
const headroom = 1.1

// Bar is one category's mean-mass bar in plot coordinates.
type Bar struct {
	Category string
	X, Y     float64
	Width    float64
	Height   float64
	Color    string // palette colour
	Fill     string // colour actually drawn
	Selected bool
}

// OverviewData is the laid-out combo chart before drawing.
type OverviewData struct {
	InnerWidth  float64
	InnerHeight float64
	X           *scale.Band
	Mass        scale.Linear
	Size        scale.Linear
	Bars        []Bar
	Line        []scene.Point
	Label       string
}

// PrepareOverview lays out one bar and one line point per summary, in the
// order given. The bar of selected, if any, takes the highlight colour.
func PrepareOverview(summaries []aggregate.Summary, selected string, layout OverviewLayout) OverviewData {
	m := layout.Margin
	d := OverviewData{
		InnerWidth:  layout.Width - m.Left - m.Right,
		InnerHeight: layout.Height - m.Top - m.Bottom,
	}

	categories := make([]string, len(summaries))
	masses := make([]float64, len(summaries))
	sizes := make([]float64, len(summaries))
	for i, s := range summaries {
		categories[i] = s.Category
		masses[i] = s.Mass
		sizes[i] = s.Size
	}

	d.X = scale.NewBand(categories, 0, d.InnerWidth, 0.2, 0.2)
	d.Mass = scale.NewLinear(0, aggregate.ExtentOf(masses).Max*headroom, d.InnerHeight, 0)
	d.Size = scale.NewLinear(0, aggregate.ExtentOf(sizes).Max*headroom, d.InnerHeight, 0)

	palette := scale.NewPalette(categories, layout.Scheme)
	for _, s := range summaries {
		x, _ := d.X.Map(s.Category)
		cx, _ := d.X.Center(s.Category)
		y := d.Mass.Map(s.Mass)

		bar := Bar{
			Category: s.Category,
			X:        x,
			Y:        y,
			Width:    d.X.Bandwidth(),
			Height:   d.InnerHeight - y,
			Color:    palette.Color(s.Category),
		}
		bar.Fill = bar.Color
		if s.Category == selected && selected != "" {
			bar.Selected = true
			bar.Fill = layout.HighlightColor
		}
		d.Bars = append(d.Bars, bar)
		d.Line = append(d.Line, scene.Point{X: cx, Y: d.Size.Map(s.Size)})
	}

	if selected != "" {
		d.Label = "Selected type: " + selected
	}
	return d
}

// Overview draws the combo chart: mean mass as bars on the left axis, mean
// size as a connected line on the right axis.
func Overview(summaries []aggregate.Summary, selected string, layout OverviewLayout) *scene.Scene {
	d := PrepareOverview(summaries, selected, layout)
	m := layout.Margin

	s := &scene.Scene{Width: layout.Width, Height: layout.Height, Title: "Average weight and height by type"}
	plot := &scene.Group{ID: "overview-plot", X: m.Left, Y: m.Top}

	for i, b := range d.Bars {
		plot.Add(&scene.Rect{
			ID:    "bar-" + strconv.Itoa(i),
			Class: "bar",
			X:     b.X,
			Y:     b.Y,
			W:     b.Width,
			H:     b.Height,
			Style: scene.Style{Fill: b.Fill},
			Data:  map[string]string{"category": b.Category, "color": b.Color},
		})
	}

	if len(d.Line) > 0 {
		plot.Add(&scene.Path{
			Class:  "height-line",
			Points: d.Line,
			Style:  scene.Style{Stroke: "black", StrokeWidth: 2},
		})
	}
	for _, p := range d.Line {
		plot.Add(&scene.Circle{Class: "height-point", CX: p.X, CY: p.Y, R: 4, Style: scene.Style{Fill: "black"}})
	}

	plot.Add(
		bandAxisBottom(d.X, d.InnerWidth, d.InnerHeight),
		&scene.Text{
			X: d.InnerWidth / 2, Y: d.InnerHeight + 60, Value: "Pokémon Type",
			Anchor: scene.AnchorMiddle, Size: 14, Bold: true, Fill: "black",
		},
		linearAxis(d.Mass, 0, false),
		axisTitle("Pokémon Weight (kg)", -50, d.InnerHeight/2),
		linearAxis(d.Size, d.InnerWidth, true),
		axisTitle("Pokémon Height (m)", d.InnerWidth+40, d.InnerHeight/2),
	)

	s.Add(plot, &scene.Text{
		ID:     "selected-type-label",
		Class:  "selected-type-label",
		X:      layout.Width / 2,
		Y:      m.Top / 2,
		Value:  d.Label,
		Anchor: scene.AnchorMiddle,
		Size:   16,
		Bold:   true,
		Fill:   "black",
	})
	return s
}
