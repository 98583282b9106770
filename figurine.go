package figurine

import (
	"fmt"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorTransparent is fully transparent black. A fill of this color is
	// treated as "no fill" by Style.HasFill.
	ColorTransparent = Color{}
	// ColorWhite is opaque white.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is opaque black.
	ColorBlack = Color{0, 0, 0, 1}
)

// Hex returns the color as a lowercase "#rrggbb" string. Alpha is dropped;
// use A directly for opacity.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

func channel8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether pt lies in r, edges included.
func (r Rect) Contains(pt Vec2) bool {
	return pt.X >= r.X && pt.X <= r.X+r.Width && pt.Y >= r.Y && pt.Y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// TopCenter returns the midpoint of the rectangle's top edge.
func (r Rect) TopCenter() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y}
}

// Union returns the smallest rectangle covering r and other. An empty r
// yields other.
func (r Rect) Union(other Rect) Rect {
	if r.Width <= 0 && r.Height <= 0 {
		return other
	}
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.Width, other.X+other.Width)
	maxY := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Range is a closed numeric interval. Numeric traits declare their domain
// with a Range.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to [Min, Max]. NaN clamps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Max(r.Min, math.Min(v, r.Max))
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Normalize maps v onto [0, 1] across the range, clamping first.
func (r Range) Normalize(v float64) float64 {
	if r.Max == r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}

// ShapeKind distinguishes the geometry carried by a Primitive.
type ShapeKind uint8

const (
	ShapeRect    ShapeKind = iota // Rect with optional CornerRadius
	ShapeEllipse                  // Center with RadiusX, RadiusY
	ShapeCircle                   // Center with RadiusX (RadiusY mirrors it)
	ShapePath                     // arbitrary Path
	ShapeLine                     // straight segment From -> To
	ShapeText                     // single glyph run anchored at Center (baseline, centered)
)

var shapeKindNames = [...]string{"rect", "ellipse", "circle", "path", "line", "text"}

// String returns the lowercase shape name.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// Layer is a draw-order bucket. Primitives in a Scene are ordered by
// non-decreasing Layer; lower layers are drawn first.
type Layer uint8

const (
	LayerBackground Layer = iota // scenery beneath everything
	LayerBody                    // skin-colored body parts
	LayerBottom                  // trousers
	LayerTop                     // torso garment and sleeves
	LayerHair                    // hair silhouette, drawn behind the head
	LayerHead                    // head ellipse and chin
	LayerFace                    // eyes, nose, lips
	LayerLogo                    // brand glyph over the torso
)

var layerNames = [...]string{"background", "body", "bottom", "top", "hair", "head", "face", "logo"}

// String returns the lowercase layer name.
func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return fmt.Sprintf("Layer(%d)", uint8(l))
}

// PartGroup names a cluster of primitives that move together. Animation
// bindings target part groups.
type PartGroup string

const (
	GroupNone     PartGroup = ""
	GroupTorso    PartGroup = "torso"
	GroupLeftLeg  PartGroup = "left-leg"
	GroupRightLeg PartGroup = "right-leg"
	GroupLeftArm  PartGroup = "left-arm"
	GroupRightArm PartGroup = "right-arm"
	GroupMouth    PartGroup = "mouth"
)

// PaintKind selects how a fill is applied.
type PaintKind uint8

const (
	PaintNone           PaintKind = iota // nothing is filled
	PaintSolid                           // flat Color
	PaintRadialGradient                  // Stops interpolated from the shape center outward
)

// GradientStop is one color stop of a gradient. Offset is in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// Paint describes a fill.
type Paint struct {
	Kind  PaintKind
	Color Color
	Stops []GradientStop
}

// Solid returns a flat paint of the given color.
func Solid(c Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// RadialGradient returns a radial paint through the given stops.
func RadialGradient(stops ...GradientStop) Paint {
	return Paint{Kind: PaintRadialGradient, Stops: stops}
}

// Style is the fill and stroke applied to a Primitive. A zero StrokeWidth
// means the outline is not drawn.
type Style struct {
	Fill        Paint
	Stroke      Color
	StrokeWidth float64
	// Opacity multiplies the whole primitive. Zero is read as fully opaque so
	// the zero Style stays usable; use Fill/Stroke alpha for true invisibility.
	Opacity float64
	// FontWeight is used by ShapeText only ("bold" or "").
	FontWeight string
}

// HasFill reports whether the style paints the interior.
func (s Style) HasFill() bool {
	switch s.Fill.Kind {
	case PaintSolid:
		return s.Fill.Color.A > 0
	case PaintRadialGradient:
		return len(s.Fill.Stops) > 0
	default:
		return false
	}
}

// HasStroke reports whether the style draws an outline.
func (s Style) HasStroke() bool {
	return s.StrokeWidth > 0 && s.Stroke.A > 0
}

// EffectiveOpacity returns Opacity, reading zero as 1.
func (s Style) EffectiveOpacity() float64 {
	if s.Opacity == 0 {
		return 1
	}
	return s.Opacity
}
