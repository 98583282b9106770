package figurine

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Fixed palette used by the builders.
var (
	lipsFill   = mustHex("#D68A8A")
	lipsStroke = mustHex("#A06A6A")
)

// Outline strengths passed to Shade. Part outlines are derived from the fill
// they surround.
const (
	outlineShade = 0.55
	seamShade    = 0.8
)

// ParseColor resolves a trait color value. It accepts "#rgb" and "#rrggbb"
// hex forms and CSS color names in any case ("Purple", "light blue").
// "transparent" yields ColorTransparent.
func ParseColor(value string) (Color, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Color{}, false
	}
	if v == "transparent" {
		return ColorTransparent, true
	}
	if strings.HasPrefix(v, "#") {
		if len(v) == 4 {
			v = "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
		}
		c, err := colorful.Hex(v)
		if err != nil {
			return Color{}, false
		}
		return fromColorful(c), true
	}
	rgba, ok := colornames.Map[strings.ReplaceAll(v, " ", "")]
	if !ok {
		return Color{}, false
	}
	c, _ := colorful.MakeColor(rgba)
	return fromColorful(c), true
}

// Shade mixes c toward black by amount in [0, 1], in Lab space so the hue
// is preserved. Alpha is kept.
func Shade(c Color, amount float64) Color {
	base := colorful.Color{R: c.R, G: c.G, B: c.B}
	out := fromColorful(base.BlendLab(colorful.Color{}, clamp01(amount)).Clamped())
	out.A = c.A
	return out
}

// outlineOf returns the opaque stroke drawn around a part filled with c.
func outlineOf(c Color, amount float64) Color {
	return Shade(c, amount).WithAlpha(1)
}

func fromColorful(c colorful.Color) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

func mustHex(s string) Color {
	c, ok := ParseColor(s)
	if !ok {
		panic("figurine: bad palette color " + s)
	}
	return c
}
