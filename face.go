package figurine

const (
	baseHeadRadius = 25

	eyeWhiteRX  = 4
	eyeWhiteRY  = 3
	irisRadius  = 1.5
	slitWidth   = 1
	slitHeight  = 4
	noseGap     = 5 // nose starts this far below the eye line
	chinOverlap = 2 // pointed chin starts slightly inside the head outline
)

// HeadMetrics are the head ellipse radii after face-shape scaling.
type HeadMetrics struct {
	RadiusX, RadiusY float64
}

// MeasureHead scales the base head radius by the face-shape factors.
func MeasureHead(p Proportions) HeadMetrics {
	return HeadMetrics{
		RadiusX: baseHeadRadius * p.HeadScaleX,
		RadiusY: baseHeadRadius * p.HeadScaleY,
	}
}

// FaceFeatures carries the face positions other builders need.
type FaceFeatures struct {
	JawWidth float64
	EyesY    float64
	LipsY    float64
}

// MeasureFace computes jaw width and feature rows for a head placed at
// l.HeadY.
func MeasureFace(p Proportions, h HeadMetrics, l Layout) FaceFeatures {
	return FaceFeatures{
		JawWidth: h.RadiusX * p.JawFactor,
		EyesY:    l.HeadY - h.RadiusY*0.1,
		LipsY:    l.HeadY + h.RadiusY*0.5,
	}
}

// ChinPath builds the chin below the head. A pointed chin is a V of exactly
// two line segments; every other chin is one smooth cubic through the same
// depth.
func ChinPath(chin Chin, cx, headBottom, jawWidth, chinLength float64) Path {
	var p Path
	if chin == ChinPointed {
		p.MoveTo(cx-jawWidth*0.5, headBottom-chinOverlap)
		p.LineTo(cx, headBottom+chinLength)
		p.LineTo(cx+jawWidth*0.5, headBottom-chinOverlap)
		return p
	}
	p.MoveTo(cx-jawWidth*0.6, headBottom)
	p.CubicTo(
		cx-jawWidth*0.5, headBottom+chinLength,
		cx+jawWidth*0.5, headBottom+chinLength,
		cx+jawWidth*0.6, headBottom,
	)
	return p
}

// BuildFace emits the head ellipse, chin, both eyes (white and iris) and the
// nose. Lips come from BuildLips.
func BuildFace(c Character, p Proportions, h HeadMetrics, f FaceFeatures, l Layout) []Primitive {
	cx := l.CenterX
	outline := outlineOf(p.SkinColor, outlineShade)
	skin := Style{Fill: Solid(p.SkinColor), Stroke: outline, StrokeWidth: 1}
	chinStyle := Style{Fill: Solid(p.SkinColor), Stroke: p.SkinColor, StrokeWidth: 2}

	prims := []Primitive{
		ellipsePrim("head", LayerHead, Vec2{cx, l.HeadY}, h.RadiusX, h.RadiusY, skin),
		pathPrim("chin", LayerHead, GroupNone, ChinPath(c.Chin, cx, l.HeadY+h.RadiusY, f.JawWidth, p.ChinLength), chinStyle),
	}

	offset := h.RadiusX * 0.4
	prims = append(prims, buildEye("left-eye", c.EyeType, Vec2{cx - offset, f.EyesY}, p.EyeColor, outline)...)
	prims = append(prims, buildEye("right-eye", c.EyeType, Vec2{cx + offset, f.EyesY}, p.EyeColor, outline)...)

	var nose Path
	top := f.EyesY + noseGap
	nose.MoveTo(cx, top)
	nose.LineTo(cx-p.NoseWidth/2, top+p.NoseHeight)
	nose.LineTo(cx+p.NoseWidth/2, top+p.NoseHeight)
	prims = append(prims, pathPrim("nose", LayerFace, GroupNone, nose,
		Style{Fill: Paint{Kind: PaintNone}, Stroke: outline, StrokeWidth: 1}))
	return prims
}

// buildEye emits the eye white and the iris. Reptile eyes get a vertical slit
// instead of a round iris.
func buildEye(name string, eyeType EyeType, at Vec2, iris, outline Color) []Primitive {
	white := ellipsePrim(name, LayerFace, at, eyeWhiteRX, eyeWhiteRY,
		Style{Fill: Solid(ColorWhite), Stroke: outline, StrokeWidth: 0.5})
	irisStyle := Style{Fill: Solid(iris)}
	if eyeType == EyesReptile {
		slit := rectPrim(name+"-iris", LayerFace, GroupNone,
			Rect{X: at.X - slitWidth/2.0, Y: at.Y - slitHeight/2.0, Width: slitWidth, Height: slitHeight}, 0, irisStyle)
		return []Primitive{white, slit}
	}
	return []Primitive{white, circlePrim(name+"-iris", LayerFace, at, irisRadius, irisStyle)}
}
