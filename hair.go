package figurine

// HasHair reports whether a character gets any hair primitive. Bald hair and
// shaved length each remove it, whatever the other trait says.
func HasHair(t HairType, l HairLength) bool {
	return t != HairBald && l != HairShaved
}

// HairPath builds the hair silhouette for one of three families: straight
// hair drapes boxy to the jaw, wavy hair is a single dome-to-shoulder curve,
// and everything else bulges out on both sides like curls.
func HairPath(t HairType, lengthFactor float64, h HeadMetrics, l Layout) Path {
	var p Path
	cx := l.CenterX
	side := h.RadiusX * 1.1
	hairY := l.HeadY - h.RadiusY*0.9

	switch t {
	case HairStraight:
		drop := hairY + 30*lengthFactor
		p.MoveTo(cx-side, hairY)
		p.LineTo(cx-side, drop)
		p.CubicTo(cx, drop+20, cx, drop+20, cx+side, drop)
		p.LineTo(cx+side, hairY)
		p.QuadTo(cx, hairY-20, cx-side, hairY)
		p.Close()
	case HairWavy:
		drop := hairY + 40*lengthFactor
		p.MoveTo(cx-side, hairY)
		p.CubicTo(cx-side, drop, cx+side, drop, cx+side, hairY)
		p.QuadTo(cx, hairY-25, cx-side, hairY)
		p.Close()
	default:
		top := l.HeadY - h.RadiusY
		bottom := l.HeadY + h.RadiusY*lengthFactor
		bulge := h.RadiusX * 1.5
		p.MoveTo(cx, top)
		p.CubicTo(cx-bulge, top, cx-bulge, bottom, cx, bottom)
		p.CubicTo(cx+bulge, bottom, cx+bulge, top, cx, top)
		p.Close()
	}
	return p
}

// BuildHair returns the hair primitive, or false when the character has none.
func BuildHair(c Character, p Proportions, h HeadMetrics, l Layout) (Primitive, bool) {
	if !HasHair(c.HairType, c.HairLength) {
		return Primitive{}, false
	}
	style := Style{Fill: Solid(p.HairColor), Stroke: outlineOf(p.HairColor, outlineShade), StrokeWidth: 1}
	return pathPrim("hair", LayerHair, GroupNone, HairPath(c.HairType, p.HairLengthFactor, h, l), style), true
}
