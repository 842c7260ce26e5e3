package scene

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"
)

func sampleScene() *Scene {
	s := &Scene{Width: 200, Height: 100, Title: "Sample & co"}
	g := &Group{ID: "plot", X: 10, Y: 20}
	g.Add(
		&Rect{ID: "bar-1", Class: "bar", X: 0, Y: 10, W: 30, H: 40,
			Style: Style{Fill: "#1f77b4"}, Data: map[string]string{"category": "Fire", "color": "#1f77b4"}},
		&Circle{CX: 15, CY: 5, R: 4, Style: Style{Fill: "black"}},
		&Line{X1: 0, Y1: 0, X2: 100, Y2: 0, Style: Style{Stroke: "grey"}},
		&Path{Points: []Point{{0, 0}, {10, 10}, {20, 5}}, Style: Style{Stroke: "steelblue", StrokeOpacity: 0.3}, Title: "Charmander"},
		&Path{Points: []Point{{0, 0}, {10, 0}, {5, 8}}, Closed: true, Style: Style{Fill: "steelblue", FillOpacity: 0.5}},
		&Text{X: 50, Y: 60, Value: "Selected <type>", Anchor: AnchorMiddle, Bold: true, Size: 16, Rotate: -40},
	)
	s.Add(g)
	return s
}

func TestSVG(t *testing.T) {
	out := SVG(sampleScene())

	wants := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" viewBox="0 0 200 100">`,
		`<title>Sample &amp; co</title>`,
		`<g id="plot" transform="translate(10,20)">`,
		`<rect id="bar-1" class="bar" x="0" y="10" width="30" height="40" fill="#1f77b4" data-category="Fire" data-color="#1f77b4"/>`,
		`<circle cx="15" cy="5" r="4" fill="black"/>`,
		`<line x1="0" y1="0" x2="100" y2="0" stroke="grey"/>`,
		`<path d="M0,0L10,10L20,5" fill="none" stroke="steelblue" stroke-opacity="0.3"><title>Charmander</title></path>`,
		`<polygon points="0,0 10,0 5,8" fill="steelblue" fill-opacity="0.5"/>`,
		`text-anchor="middle"`,
		`transform="rotate(-40,50,60)"`,
		`>Selected &lt;type&gt;</text>`,
		`</g></svg>`,
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q\n%s", want, out)
		}
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		1:          "1",
		1.005:      "1",
		12.346:     "12.35",
		-0.001:     "0",
		math.NaN(): "NaN",
	}
	for in, want := range tests {
		if math.IsNaN(in) {
			if got := num(in); got != "NaN" {
				t.Errorf("num(NaN) = %s", got)
			}
			continue
		}
		if got := num(in); got != want {
			t.Errorf("num(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, sampleScene()); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("image size = %dx%d, want 200x100", b.Dx(), b.Dy())
	}

	// The bar is drawn at (10, 30) in canvas space after the group offset.
	r, g, b, _ := img.At(20, 50).RGBA()
	if r>>8 != 0x1f || g>>8 != 0x77 || b>>8 != 0xb4 {
		t.Errorf("bar pixel = %02x%02x%02x, want 1f77b4", r>>8, g>>8, b>>8)
	}
}

func TestEncodePNG_InvalidSize(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, &Scene{}); err == nil {
		t.Fatal("expected error for empty scene size")
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#ccc")
	if !ok || c.R != 0xcc || c.G != 0xcc || c.B != 0xcc {
		t.Errorf("ParseColor(#ccc) = %+v, %v", c, ok)
	}
	c, ok = ParseColor("limegreen")
	if !ok || c.R != 0x32 || c.G != 0xcd || c.B != 0x32 {
		t.Errorf("ParseColor(limegreen) = %+v, %v", c, ok)
	}
	for _, bad := range []string{"", "none", "#12", "#zzzzzz", "chartreuse"} {
		if _, ok := ParseColor(bad); ok {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestFind(t *testing.T) {
	s := sampleScene()
	if got := len(Find[*Path](s)); got != 2 {
		t.Errorf("Find[*Path] = %d, want 2", got)
	}
	if got := len(Find[*Rect](s)); got != 1 {
		t.Errorf("Find[*Rect] = %d, want 1", got)
	}
}
