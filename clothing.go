package figurine

const (
	logoGlyph      = "V"
	logoFontSize   = 24
	logoDrop       = 40 // baseline offset below the shoulder line
	pantLegExtra   = 4  // pant legs are this much wider than the legs
	pantLegInset   = 3
	garmentMargin  = 2 // torso garment overhang on each side
	sleeveExtra    = 2
	shortSleeveFac = 0.4
	longSleeveExt  = 5
)

// BuildClothing emits bottoms, tops and the optional logo, in that order.
// Garments outside the drawn families leave the body uncovered for that slot.
func BuildClothing(c Character, p Proportions, b BodyMetrics, l Layout) []Primitive {
	var prims []Primitive
	prims = append(prims, buildBottom(c.Bottom, p.ClothingColor, b, l)...)
	prims = append(prims, buildTop(c.Top, p.ClothingColor, b, l)...)
	if c.ShowLogo {
		prims = append(prims, buildLogo(l))
	}
	return prims
}

func buildBottom(bottom Bottom, fill Color, b BodyMetrics, l Layout) []Primitive {
	if bottom != BottomPants && bottom != BottomJeans {
		return nil
	}
	style := Style{Fill: Solid(fill), Stroke: outlineOf(fill, outlineShade), StrokeWidth: 1}
	w := b.LegWidth + pantLegExtra
	half := b.TorsoWidth / 2
	return []Primitive{
		rectPrim("left-pant-leg", LayerBottom, GroupLeftLeg,
			Rect{X: l.CenterX - half + pantLegInset, Y: l.LegsY, Width: w, Height: b.LegHeight}, limbRadius, style),
		rectPrim("right-pant-leg", LayerBottom, GroupRightLeg,
			Rect{X: l.CenterX + half - w - pantLegInset, Y: l.LegsY, Width: w, Height: b.LegHeight}, limbRadius, style),
	}
}

func buildTop(top Top, fill Color, b BodyMetrics, l Layout) []Primitive {
	var sleeve float64
	switch top {
	case TopTShirt:
		sleeve = b.ArmHeight * shortSleeveFac
	case TopShirt, TopJacket:
		sleeve = b.ArmHeight + longSleeveExt
	default:
		return nil
	}
	style := Style{Fill: Solid(fill), Stroke: outlineOf(fill, outlineShade), StrokeWidth: 1}
	half := b.TorsoWidth / 2
	sleeveW := b.ArmWidth + sleeveExtra
	sleeveY := l.TorsoY + armDrop
	prims := []Primitive{
		rectPrim("top-torso", LayerTop, GroupTorso,
			Rect{X: l.CenterX - half - garmentMargin, Y: l.TorsoY, Width: b.TorsoWidth + 2*garmentMargin, Height: b.TorsoHeight}, torsoRadius, style),
		rectPrim("left-sleeve", LayerTop, GroupLeftArm,
			Rect{X: l.CenterX - half - b.ArmWidth - limbInset - sleeveExtra, Y: sleeveY, Width: sleeveW, Height: sleeve}, limbRadius, style),
		rectPrim("right-sleeve", LayerTop, GroupRightArm,
			Rect{X: l.CenterX + half + limbInset, Y: sleeveY, Width: sleeveW, Height: sleeve}, limbRadius, style),
	}
	if top == TopJacket {
		prims = append(prims, linePrim("jacket-seam", LayerTop,
			Vec2{l.CenterX, l.TorsoY}, Vec2{l.CenterX, l.TorsoY + b.TorsoHeight},
			Style{Stroke: outlineOf(fill, seamShade), StrokeWidth: 2}))
	}
	return prims
}

// buildLogo places the brand glyph on the chest, white with a black outline
// so it reads on any garment color. It breathes with the torso.
func buildLogo(l Layout) Primitive {
	return Primitive{
		Name:      "logo",
		Layer:     LayerLogo,
		Group:     GroupTorso,
		Kind:      ShapeText,
		Center:    Vec2{l.CenterX, l.TorsoY + logoDrop},
		Text:      logoGlyph,
		FontSize:  logoFontSize,
		Style:     Style{Fill: Solid(ColorWhite), Stroke: ColorBlack, StrokeWidth: 2, FontWeight: "bold"},
		Transform: Identity,
	}
}
