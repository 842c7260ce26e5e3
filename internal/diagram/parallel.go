package diagram

import (
	"github.com/junkd0g/pokeviz/internal/aggregate"
	"github.com/junkd0g/pokeviz/internal/record"
	"github.com/junkd0g/pokeviz/internal/scale"
	"github.com/junkd0g/pokeviz/internal/scene"
)

// ParallelAxis is one vertical trait axis, scaled to the selected category.
type ParallelAxis struct {
	Trait  record.Trait
	X      float64
	Extent aggregate.Extent
	Y      scale.Linear
}

// ParallelLine is one record drawn across every axis.
type ParallelLine struct {
	Name   string
	Points []scene.Point
}

// ParallelData is the laid-out parallel-coordinates chart in plot coordinates.
type ParallelData struct {
	Category    string
	InnerWidth  float64
	InnerHeight float64
	Axes        [record.NumTraits]ParallelAxis
	Lines       []ParallelLine
}

// PrepareParallel places one polyline per record of category. Each axis spans
// the category's own [min, max] for that trait.
func PrepareParallel(records []record.Record, category string, layout ParallelLayout) ParallelData {
	m := layout.Margin
	d := ParallelData{
		Category:    category,
		InnerWidth:  layout.Width - m.Left - m.Right,
		InnerHeight: layout.Height - m.Top - m.Bottom,
	}

	names := make([]string, record.NumTraits)
	for i, t := range record.Traits {
		names[i] = t.String()
	}
	x := scale.NewPoint(names, 0, d.InnerWidth, 0.5)

	extents := aggregate.TraitExtents(records, category)
	for i, t := range record.Traits {
		px, _ := x.Map(t.String())
		e := extents[t]
		d.Axes[i] = ParallelAxis{
			Trait:  t,
			X:      px,
			Extent: e,
			Y:      scale.NewLinear(e.Min, e.Max, d.InnerHeight, 0),
		}
	}

	for _, r := range aggregate.Filter(records, category) {
		line := ParallelLine{Name: r.Name, Points: make([]scene.Point, record.NumTraits)}
		for i, a := range d.Axes {
			line.Points[i] = scene.Point{X: a.X, Y: a.Y.Map(r.Trait(a.Trait))}
		}
		d.Lines = append(d.Lines, line)
	}
	return d
}

// Parallel draws the parallel-coordinates chart of one category.
func Parallel(records []record.Record, category string, layout ParallelLayout) *scene.Scene {
	d := PrepareParallel(records, category, layout)
	m := layout.Margin

	s := &scene.Scene{Width: layout.Width, Height: layout.Height, Title: "Trait profiles: " + category}
	plot := &scene.Group{ID: "parallel-plot", X: m.Left, Y: m.Top}

	for _, a := range d.Axes {
		axis := &scene.Group{Class: "dimension", X: a.X}
		if a.Extent.Valid {
			axis.Add(linearAxis(a.Y, 0, false))
		} else {
			axis.Add(&scene.Line{Y1: d.InnerHeight, Style: axisStyle})
		}
		axis.Add(&scene.Text{
			Y: -15, Value: a.Trait.String(), Anchor: scene.AnchorMiddle, Bold: true, Size: 11, Fill: "black",
		})
		plot.Add(axis)
	}

	lines := &scene.Group{Class: "profiles"}
	for _, l := range d.Lines {
		lines.Add(&scene.Path{
			Points: l.Points,
			Style:  scene.Style{Stroke: layout.Color, StrokeOpacity: layout.Opacity},
			Title:  l.Name,
		})
	}
	plot.Add(lines)

	s.Add(plot)
	return s
}
