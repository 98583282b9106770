package figurine

var (
	plainLightFill = mustHex("#f1f5f9")
	plainDarkFill  = mustHex("#1e293b")
	studioInner    = mustHex("#e2e8f0")
	studioOuter    = mustHex("#94a3b8")
	indoorWall     = mustHex("#bfdbfe")
	indoorFloor    = mustHex("#94a3b8")
	indoorHorizon  = mustHex("#475569")
	outdoorSky     = mustHex("#7dd3fc")
	outdoorGround  = mustHex("#4ade80")
	outdoorSun     = mustHex("#facc15")
)

// BuildBackground returns the scenery for a background mode on a canvas of
// the given size. Transparent and unknown modes return nothing so the canvas
// alpha stays zero for overlay compositing.
func BuildBackground(bg Background, width, height float64) []Primitive {
	full := Rect{Width: width, Height: height}
	switch bg {
	case BackgroundPlainLight:
		return []Primitive{rectPrim("backdrop", LayerBackground, GroupNone, full, 0, Style{Fill: Solid(plainLightFill)})}
	case BackgroundPlainDark:
		return []Primitive{rectPrim("backdrop", LayerBackground, GroupNone, full, 0, Style{Fill: Solid(plainDarkFill)})}
	case BackgroundStudio:
		gradient := RadialGradient(
			GradientStop{Offset: 0, Color: studioInner},
			GradientStop{Offset: 1, Color: studioOuter},
		)
		return []Primitive{
			rectPrim("backdrop", LayerBackground, GroupNone, full, 0, Style{Fill: gradient}),
			ellipsePrim("floor-shadow", LayerBackground, Vec2{width / 2, height - 20}, width/1.5, 30,
				Style{Fill: Solid(ColorBlack), Opacity: 0.1}),
		}
	case BackgroundIndoor:
		horizon := height * 0.7
		return []Primitive{
			rectPrim("backdrop", LayerBackground, GroupNone, full, 0, Style{Fill: Solid(indoorWall)}),
			rectPrim("floor", LayerBackground, GroupNone, Rect{Y: horizon, Width: width, Height: height * 0.3}, 0, Style{Fill: Solid(indoorFloor)}),
			linePrim("horizon", LayerBackground, Vec2{0, horizon}, Vec2{width, horizon}, Style{Stroke: indoorHorizon, StrokeWidth: 2}),
		}
	case BackgroundOutdoor:
		return []Primitive{
			rectPrim("backdrop", LayerBackground, GroupNone, full, 0, Style{Fill: Solid(outdoorSky)}),
			rectPrim("ground", LayerBackground, GroupNone, Rect{Y: height * 0.75, Width: width, Height: height * 0.25}, 0, Style{Fill: Solid(outdoorGround)}),
			circlePrim("sun", LayerBackground, Vec2{width * 0.8, 50}, 20, Style{Fill: Solid(outdoorSun)}),
		}
	default:
		return nil
	}
}
