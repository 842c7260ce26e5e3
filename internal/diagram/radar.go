package diagram

import (
	"math"

	"github.com/junkd0g/pokeviz/internal/aggregate"
	"github.com/junkd0g/pokeviz/internal/record"
	"github.com/junkd0g/pokeviz/internal/scale"
	"github.com/junkd0g/pokeviz/internal/scene"
)

// RadarAxis is one spoke of the star chart.
type RadarAxis struct {
	Trait  record.Trait
	Angle  float64 // radians, 0 points right, first axis points up
	Tip    scene.Point
	Mean   float64
	Point  scene.Point // mean position on the spoke
	Extent aggregate.Extent
}

// RadarData is the laid-out star chart for one category, relative to its centre.
type RadarData struct {
	Category string
	Count    int
	Center   scene.Point
	Radius   float64
	R        scale.Linear
	Axes     [record.NumTraits]RadarAxis
	Polygon  []scene.Point
}

// PrepareRadar re-aggregates the traits of category from the raw records.
// Polygon is nil when no record matches.
func PrepareRadar(records []record.Record, category string, layout RadarLayout) RadarData {
	means, n := aggregate.TraitMeans(records, category)
	extents := aggregate.TraitExtents(records, category)

	radius := math.Min(layout.Width, layout.Height)/2 - layout.Margin
	d := RadarData{
		Category: category,
		Count:    n,
		Center:   scene.Point{X: layout.Width / 2, Y: layout.Height / 2},
		Radius:   radius,
		R:        scale.NewLinear(0, layout.Ceiling, 0, radius),
	}

	slice := 2 * math.Pi / record.NumTraits
	for i, t := range record.Traits {
		angle := float64(i)*slice - math.Pi/2
		tip := d.R.Map(layout.Ceiling)
		r := d.R.Map(means[t])

		d.Axes[i] = RadarAxis{
			Trait:  t,
			Angle:  angle,
			Tip:    scene.Point{X: tip * math.Cos(angle), Y: tip * math.Sin(angle)},
			Mean:   means[t],
			Point:  scene.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)},
			Extent: extents[t],
		}
	}

	if n > 0 {
		d.Polygon = make([]scene.Point, record.NumTraits)
		for i, a := range d.Axes {
			d.Polygon[i] = a.Point
		}
	}
	return d
}

// Radar draws the star chart of one category: reference rings, one spoke per
// trait labelled with the category's min and max, and the mean polygon.
func Radar(records []record.Record, category string, layout RadarLayout) *scene.Scene {
	d := PrepareRadar(records, category, layout)

	s := &scene.Scene{Width: layout.Width, Height: layout.Height, Title: "Trait averages: " + category}
	g := &scene.Group{ID: "radar", X: d.Center.X, Y: d.Center.Y}

	levels := layout.Levels
	if levels <= 0 {
		levels = 5
	}
	for level := 1; level <= levels; level++ {
		g.Add(&scene.Circle{
			Class: "ring",
			R:     d.Radius / float64(levels) * float64(level),
			Style: scene.Style{Fill: "none", Stroke: "#ccc"},
		})
	}

	for _, a := range d.Axes {
		g.Add(
			&scene.Line{X2: a.Tip.X, Y2: a.Tip.Y, Style: scene.Style{Stroke: "grey", StrokeWidth: 1}},
			&scene.Text{
				X: a.Tip.X * 1.1, Y: a.Tip.Y * 1.1, Value: a.Trait.String(),
				Anchor: scene.AnchorMiddle, Middle: true, Size: 11, Bold: true, Fill: "black",
			},
		)
		if !a.Extent.Valid {
			continue
		}
		g.Add(
			&scene.Text{
				Class: "min-label", X: a.Tip.X * 0.15, Y: a.Tip.Y * 0.15, Value: formatWhole(a.Extent.Min),
				Anchor: scene.AnchorMiddle, Middle: true, Size: 9, Fill: "gray",
			},
			&scene.Text{
				Class: "max-label", X: a.Tip.X * 1.3, Y: a.Tip.Y * 1.3, Value: formatWhole(a.Extent.Max),
				Anchor: scene.AnchorMiddle, Middle: true, Size: 9, Fill: "gray",
			},
		)
	}

	if d.Polygon != nil {
		g.Add(&scene.Path{
			Class:  "trait-polygon",
			Points: d.Polygon,
			Closed: true,
			Style: scene.Style{
				Fill:        layout.Color,
				FillOpacity: 0.5,
				Stroke:      layout.Color,
				StrokeWidth: 2,
			},
		})
	}

	s.Add(g)
	return s
}
