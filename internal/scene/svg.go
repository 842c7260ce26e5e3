package scene

import (
	"fmt"
	"html"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// EncodeSVG writes the scene as a standalone SVG document.
func EncodeSVG(w io.Writer, s *Scene) error {
	if _, err := io.WriteString(w, SVG(s)); err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}

// SVG renders the scene to SVG markup.
func SVG(s *Scene) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(s.Width), num(s.Height), num(s.Width), num(s.Height)))
	if s.Title != "" {
		sb.WriteString("<title>" + html.EscapeString(s.Title) + "</title>")
	}
	for _, el := range s.Elements {
		writeElement(&sb, el)
	}
	sb.WriteString("</svg>")

	return sb.String()
}

func writeElement(sb *strings.Builder, el Element) {
	switch e := el.(type) {
	case *Group:
		sb.WriteString("<g")
		attr(sb, "id", e.ID)
		attr(sb, "class", e.Class)
		if e.X != 0 || e.Y != 0 {
			attr(sb, "transform", "translate("+num(e.X)+","+num(e.Y)+")")
		}
		sb.WriteString(">")
		for _, child := range e.Children {
			writeElement(sb, child)
		}
		sb.WriteString("</g>")

	case *Rect:
		sb.WriteString("<rect")
		attr(sb, "id", e.ID)
		attr(sb, "class", e.Class)
		attr(sb, "x", num(e.X))
		attr(sb, "y", num(e.Y))
		attr(sb, "width", num(e.W))
		attr(sb, "height", num(e.H))
		style(sb, e.Style)
		keys := make([]string, 0, len(e.Data))
		for k := range e.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			attr(sb, "data-"+k, e.Data[k])
		}
		sb.WriteString("/>")

	case *Circle:
		sb.WriteString("<circle")
		attr(sb, "class", e.Class)
		attr(sb, "cx", num(e.CX))
		attr(sb, "cy", num(e.CY))
		attr(sb, "r", num(e.R))
		style(sb, e.Style)
		sb.WriteString("/>")

	case *Line:
		sb.WriteString("<line")
		attr(sb, "x1", num(e.X1))
		attr(sb, "y1", num(e.Y1))
		attr(sb, "x2", num(e.X2))
		attr(sb, "y2", num(e.Y2))
		style(sb, e.Style)
		sb.WriteString("/>")

	case *Path:
		if e.Closed {
			sb.WriteString("<polygon")
			attr(sb, "points", points(e.Points))
		} else {
			sb.WriteString("<path")
			attr(sb, "d", pathData(e.Points))
		}
		attr(sb, "class", e.Class)
		st := e.Style
		if st.Fill == "" {
			st.Fill = "none"
		}
		style(sb, st)
		if e.Title == "" {
			sb.WriteString("/>")
			break
		}
		sb.WriteString("><title>" + html.EscapeString(e.Title) + "</title>")
		if e.Closed {
			sb.WriteString("</polygon>")
		} else {
			sb.WriteString("</path>")
		}

	case *Text:
		sb.WriteString("<text")
		attr(sb, "id", e.ID)
		attr(sb, "class", e.Class)
		attr(sb, "x", num(e.X))
		attr(sb, "y", num(e.Y))
		if e.Anchor != "" && e.Anchor != AnchorStart {
			attr(sb, "text-anchor", string(e.Anchor))
		}
		if e.Middle {
			attr(sb, "dominant-baseline", "middle")
		}
		if e.DX != 0 {
			attr(sb, "dx", num(e.DX)+"em")
		}
		if e.DY != 0 {
			attr(sb, "dy", num(e.DY)+"em")
		}
		if e.Rotate != 0 {
			attr(sb, "transform", "rotate("+num(e.Rotate)+","+num(e.X)+","+num(e.Y)+")")
		}
		if e.Size > 0 {
			attr(sb, "font-size", num(e.Size))
		}
		if e.Bold {
			attr(sb, "font-weight", "bold")
		}
		attr(sb, "fill", e.Fill)
		sb.WriteString(">" + html.EscapeString(e.Value) + "</text>")
	}
}

func attr(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString(" " + name + `="` + html.EscapeString(value) + `"`)
}

func style(sb *strings.Builder, st Style) {
	attr(sb, "fill", st.Fill)
	attr(sb, "stroke", st.Stroke)
	if st.StrokeWidth > 0 {
		attr(sb, "stroke-width", num(st.StrokeWidth))
	}
	if st.FillOpacity > 0 {
		attr(sb, "fill-opacity", num(st.FillOpacity))
	}
	if st.StrokeOpacity > 0 {
		attr(sb, "stroke-opacity", num(st.StrokeOpacity))
	}
}

func points(pts []Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

func pathData(pts []Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			sb.WriteString("M")
		} else {
			sb.WriteString("L")
		}
		sb.WriteString(num(p.X) + "," + num(p.Y))
	}
	return sb.String()
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
