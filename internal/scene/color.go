package scene

import (
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// named covers the CSS colour keywords the charts use.
var named = map[string]string{
	"black":     "000000",
	"white":     "ffffff",
	"grey":      "808080",
	"gray":      "808080",
	"steelblue": "4682b4",
	"limegreen": "32cd32",
}

// ParseColor resolves a CSS hex colour or one of the known keywords.
// It reports false for "none", empty and unrecognised values.
func ParseColor(c string) (drawing.Color, bool) {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" || c == "none" {
		return drawing.ColorTransparent, false
	}
	if hex, ok := named[c]; ok {
		return drawing.ColorFromHex(hex), true
	}
	hex := strings.TrimPrefix(c, "#")
	if len(hex) != 3 && len(hex) != 6 {
		return drawing.ColorTransparent, false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return drawing.ColorTransparent, false
		}
	}
	return drawing.ColorFromHex(hex), true
}

// withOpacity applies a 0..1 opacity; zero keeps the colour opaque.
func withOpacity(c drawing.Color, opacity float64) drawing.Color {
	if opacity <= 0 || opacity >= 1 {
		return c
	}
	return c.WithAlpha(uint8(math.Round(opacity * 255)))
}
