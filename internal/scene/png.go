package scene

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// EncodePNG rasterises the scene. Text uses the built-in bitmap face, so font
// size and weight are approximated.
func EncodePNG(w io.Writer, s *Scene) error {
	width, height := int(math.Ceil(s.Width)), int(math.Ceil(s.Height))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("failed to rasterise scene: invalid size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	Walk(s.Elements, func(el Element, dx, dy float64) {
		dc.Push()
		dc.Translate(dx, dy)
		drawElement(dc, el)
		dc.Pop()
	})

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func drawElement(dc *gg.Context, el Element) {
	switch e := el.(type) {
	case *Rect:
		if !finite([]Point{{e.X, e.Y}, {e.W, e.H}}) {
			return
		}
		dc.DrawRectangle(e.X, e.Y, e.W, e.H)
		paint(dc, e.Style, false)

	case *Circle:
		if !finite([]Point{{e.CX, e.CY}, {e.R, 0}}) {
			return
		}
		dc.DrawCircle(e.CX, e.CY, e.R)
		paint(dc, e.Style, false)

	case *Line:
		st := e.Style
		if st.Stroke == "" {
			st.Stroke = "black"
		}
		if !finite([]Point{{e.X1, e.Y1}, {e.X2, e.Y2}}) {
			return
		}
		dc.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		paint(dc, st, true)

	case *Path:
		if len(e.Points) == 0 || !finite(e.Points) {
			return
		}
		dc.MoveTo(e.Points[0].X, e.Points[0].Y)
		for _, p := range e.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		if e.Closed {
			dc.ClosePath()
		}
		paint(dc, e.Style, !e.Closed)

	case *Text:
		c, ok := ParseColor(e.Fill)
		if !ok {
			c, _ = ParseColor("black")
		}
		dc.SetColor(c)

		ax, ay := 0.0, 0.0
		switch e.Anchor {
		case AnchorMiddle:
			ax = 0.5
		case AnchorEnd:
			ax = 1
		}
		if e.Middle {
			ay = 0.5
		}

		x := e.X + e.DX*fontSize(e)
		y := e.Y + e.DY*fontSize(e)
		if e.Rotate != 0 {
			dc.Push()
			dc.RotateAbout(gg.Radians(e.Rotate), e.X, e.Y)
			dc.DrawStringAnchored(e.Value, x, y, ax, ay)
			dc.Pop()
			return
		}
		dc.DrawStringAnchored(e.Value, x, y, ax, ay)
	}
}

// paint fills then strokes the current path. Fill defaults to black for
// closed shapes, as in SVG; open paths are never filled.
func paint(dc *gg.Context, st Style, open bool) {
	fill, hasFill := ParseColor(st.Fill)
	if st.Fill == "" && !open {
		fill, hasFill = ParseColor("black")
	}
	stroke, hasStroke := ParseColor(st.Stroke)

	if hasFill && !open {
		dc.SetColor(withOpacity(fill, st.FillOpacity))
		if hasStroke {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if hasStroke {
		width := st.StrokeWidth
		if width <= 0 {
			width = 1
		}
		dc.SetLineWidth(width)
		dc.SetColor(withOpacity(stroke, st.StrokeOpacity))
		dc.Stroke()
	}
	dc.ClearPath()
}

func fontSize(t *Text) float64 {
	if t.Size > 0 {
		return t.Size
	}
	return 10
}

func finite(pts []Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
