package figurine

// Primitive is a single drawable shape. Which geometry fields are read depends
// on Kind; the rest stay zero.
type Primitive struct {
	Name  string
	Layer Layer
	Group PartGroup
	Kind  ShapeKind

	// ShapeRect.
	Rect         Rect
	CornerRadius float64

	// ShapeEllipse, ShapeCircle, and ShapeText (Center is the text anchor).
	Center           Vec2
	RadiusX, RadiusY float64

	// ShapePath.
	Path Path

	// ShapeLine.
	From, To Vec2

	// ShapeText.
	Text     string
	FontSize float64

	Style Style

	// Transform maps the primitive's coordinates into scene space. Figure
	// primitives carry the pose shear; background primitives the identity.
	Transform Matrix

	// Animation is the declared loop for this primitive, or nil.
	Animation *AnimationBinding
}

func rectPrim(name string, layer Layer, group PartGroup, r Rect, radius float64, style Style) Primitive {
	return Primitive{Name: name, Layer: layer, Group: group, Kind: ShapeRect, Rect: r, CornerRadius: radius, Style: style, Transform: Identity}
}

func ellipsePrim(name string, layer Layer, c Vec2, rx, ry float64, style Style) Primitive {
	return Primitive{Name: name, Layer: layer, Kind: ShapeEllipse, Center: c, RadiusX: rx, RadiusY: ry, Style: style, Transform: Identity}
}

func circlePrim(name string, layer Layer, c Vec2, r float64, style Style) Primitive {
	return Primitive{Name: name, Layer: layer, Kind: ShapeCircle, Center: c, RadiusX: r, RadiusY: r, Style: style, Transform: Identity}
}

func pathPrim(name string, layer Layer, group PartGroup, p Path, style Style) Primitive {
	return Primitive{Name: name, Layer: layer, Group: group, Kind: ShapePath, Path: p, Style: style, Transform: Identity}
}

func linePrim(name string, layer Layer, from, to Vec2, style Style) Primitive {
	return Primitive{Name: name, Layer: layer, Kind: ShapeLine, From: from, To: to, Style: style, Transform: Identity}
}

// Bounds returns the untransformed bounding box of the primitive's geometry.
// Text is approximated by an em box around the anchor.
func (p Primitive) Bounds() Rect {
	switch p.Kind {
	case ShapeRect:
		return p.Rect
	case ShapeEllipse, ShapeCircle:
		return Rect{X: p.Center.X - p.RadiusX, Y: p.Center.Y - p.RadiusY, Width: 2 * p.RadiusX, Height: 2 * p.RadiusY}
	case ShapePath:
		return p.Path.Bounds()
	case ShapeLine:
		var pl Path
		pl.MoveTo(p.From.X, p.From.Y).LineTo(p.To.X, p.To.Y)
		return pl.Bounds()
	case ShapeText:
		w := p.FontSize * 0.6 * float64(len([]rune(p.Text)))
		return Rect{X: p.Center.X - w/2, Y: p.Center.Y - p.FontSize*0.75, Width: w, Height: p.FontSize}
	default:
		return Rect{}
	}
}

// Outline returns the primitive's geometry as a path in its own coordinates.
// Hosts that only know how to draw paths use it for every shape kind. Text
// yields the glyph's stroke skeleton for the "V" logo and an empty path for
// anything else.
func (p Primitive) Outline() Path {
	switch p.Kind {
	case ShapeRect:
		return RoundedRectPath(p.Rect, p.CornerRadius)
	case ShapeEllipse, ShapeCircle:
		return EllipsePath(p.Center, p.RadiusX, p.RadiusY)
	case ShapePath:
		return p.Path
	case ShapeLine:
		var pl Path
		pl.MoveTo(p.From.X, p.From.Y).LineTo(p.To.X, p.To.Y)
		return pl
	case ShapeText:
		return glyphOutline(p)
	default:
		return Path{}
	}
}

// glyphOutline draws a "V" as a closed chevron inside the text box.
func glyphOutline(p Primitive) Path {
	var g Path
	if p.Text != logoGlyph {
		return g
	}
	b := p.Bounds()
	stem := b.Width * 0.22
	g.MoveTo(b.X, b.Y)
	g.LineTo(b.X+stem, b.Y)
	g.LineTo(b.X+b.Width/2, b.Y+b.Height*0.78)
	g.LineTo(b.X+b.Width-stem, b.Y)
	g.LineTo(b.X+b.Width, b.Y)
	g.LineTo(b.X+b.Width/2+stem/2, b.Y+b.Height)
	g.LineTo(b.X+b.Width/2-stem/2, b.Y+b.Height)
	g.Close()
	return g
}
