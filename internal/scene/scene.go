// Package scene is a small declarative scene graph for 2D charts, with SVG and
// PNG encoders.
package scene

// Scene is one drawable region.
type Scene struct {
	Width    float64
	Height   float64
	Title    string
	Elements []Element
}

// Element is any drawable node.
type Element interface {
	element()
}

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

// Style holds paint settings. A zero opacity means fully opaque and an empty
// colour means the encoder default ("none" for strokes).
type Style struct {
	Fill          string
	Stroke        string
	StrokeWidth   float64
	FillOpacity   float64
	StrokeOpacity float64
}

// Group translates its children by (X, Y).
type Group struct {
	ID       string
	Class    string
	X, Y     float64
	Children []Element
}

// Rect is an axis-aligned rectangle. Data becomes data-* attributes in SVG.
type Rect struct {
	ID    string
	Class string
	X, Y  float64
	W, H  float64
	Style Style
	Data  map[string]string
}

// Circle is a filled or stroked circle.
type Circle struct {
	Class  string
	CX, CY float64
	R      float64
	Style  Style
}

// Line is a single segment.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Style  Style
}

// Path is a polyline, or a polygon when Closed is set.
type Path struct {
	Class  string
	Points []Point
	Closed bool
	Style  Style
	Title  string // tooltip
}

// Anchor is the horizontal text alignment.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Text is a label. Rotate is in degrees around (X, Y).
type Text struct {
	ID     string
	Class  string
	X, Y   float64
	Value  string
	Anchor Anchor
	Middle bool // vertically centred on Y
	Size   float64
	Bold   bool
	Fill   string
	Rotate float64
	DX, DY float64 // offsets in em
}

func (*Group) element()  {}
func (*Rect) element()   {}
func (*Circle) element() {}
func (*Line) element()   {}
func (*Path) element()   {}
func (*Text) element()   {}

// Add appends elements to the scene.
func (s *Scene) Add(els ...Element) {
	s.Elements = append(s.Elements, els...)
}

// Add appends children to the group.
func (g *Group) Add(els ...Element) {
	g.Children = append(g.Children, els...)
}

// Walk visits every element depth-first with the accumulated translation.
func Walk(els []Element, fn func(el Element, dx, dy float64)) {
	walk(els, 0, 0, fn)
}

func walk(els []Element, dx, dy float64, fn func(Element, float64, float64)) {
	for _, el := range els {
		fn(el, dx, dy)
		if g, ok := el.(*Group); ok {
			walk(g.Children, dx+g.X, dy+g.Y, fn)
		}
	}
}

// Find returns every element of type T in the scene, in drawing order.
func Find[T Element](s *Scene) []T {
	var out []T
	Walk(s.Elements, func(el Element, _, _ float64) {
		if t, ok := el.(T); ok {
			out = append(out, t)
		}
	})
	return out
}
