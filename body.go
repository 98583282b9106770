package figurine

import "math"

// Fixed body constants.
const (
	baseHeight   = 200 // total figure height at the minimum height trait
	heightSpan   = 100 // added across the full height range
	baseTorso    = 40  // torso width at the minimum weight trait
	torsoSpan    = 40  // added across the full weight range
	neckHeight   = 10
	neckWidth    = 15
	limbRadius   = 5
	torsoRadius  = 10
	limbInset    = 5  // gap between torso edge and leg/arm
	armDrop      = 10 // arms start this far below the shoulder line
	headTopSpace = 30 // room above the head for hair
	canvasMargin = 50
)

// BodyMetrics are the derived body dimensions.
type BodyMetrics struct {
	TotalHeight float64
	TorsoWidth  float64
	TorsoHeight float64
	LegHeight   float64
	LegWidth    float64
	ArmHeight   float64
	ArmWidth    float64
	NeckHeight  float64
	NeckWidth   float64
}

// MeasureBody derives body dimensions from resolved proportions.
func MeasureBody(p Proportions) BodyMetrics {
	total := baseHeight + p.HeightFactor*heightSpan
	torsoW := (baseTorso + p.WeightFactor*torsoSpan) * p.BodyTypeMultiplier
	torsoH := 0.4 * total
	return BodyMetrics{
		TotalHeight: total,
		TorsoWidth:  torsoW,
		TorsoHeight: torsoH,
		LegHeight:   0.5 * total,
		LegWidth:    0.4 * torsoW,
		ArmHeight:   0.8 * torsoH,
		ArmWidth:    0.25 * torsoW,
		NeckHeight:  neckHeight,
		NeckWidth:   neckWidth,
	}
}

// Layout is the shared coordinate frame every builder places shapes in.
type Layout struct {
	Width, Height float64
	CenterX       float64
	HeadY         float64
	NeckY         float64
	TorsoY        float64
	LegsY         float64
}

// NewLayout stacks head, neck, torso and legs from the top of the canvas and
// sizes the canvas to fit the widest of head and shoulders-with-arms.
func NewLayout(b BodyMetrics, h HeadMetrics) Layout {
	width := math.Max(b.TorsoWidth+2*b.ArmWidth+40, 2*h.RadiusX+20)
	headY := headTopSpace + h.RadiusY
	neckY := headY + h.RadiusY
	torsoY := neckY + b.NeckHeight
	return Layout{
		Width:   width,
		Height:  b.TotalHeight + 2*h.RadiusY + canvasMargin,
		CenterX: width / 2,
		HeadY:   headY,
		NeckY:   neckY,
		TorsoY:  torsoY,
		LegsY:   torsoY + b.TorsoHeight,
	}
}

// Pivot is the point the pose shear is applied about.
func (l Layout) Pivot() Vec2 {
	return Vec2{l.CenterX, l.TorsoY}
}

// BuildBody emits the skin-colored body parts: neck, torso, both legs and
// both arms. Every part but the neck carries its animation part group.
func BuildBody(b BodyMetrics, l Layout, skin Color) []Primitive {
	style := Style{Fill: Solid(skin), Stroke: outlineOf(skin, outlineShade), StrokeWidth: 1}
	cx := l.CenterX
	halfTorso := b.TorsoWidth / 2
	armY := l.TorsoY + armDrop
	return []Primitive{
		rectPrim("neck", LayerBody, GroupNone,
			Rect{X: cx - b.NeckWidth/2, Y: l.NeckY, Width: b.NeckWidth, Height: b.NeckHeight}, 0, style),
		rectPrim("torso", LayerBody, GroupTorso,
			Rect{X: cx - halfTorso, Y: l.TorsoY, Width: b.TorsoWidth, Height: b.TorsoHeight}, torsoRadius, style),
		rectPrim("left-leg", LayerBody, GroupLeftLeg,
			Rect{X: cx - halfTorso + limbInset, Y: l.LegsY, Width: b.LegWidth, Height: b.LegHeight}, limbRadius, style),
		rectPrim("right-leg", LayerBody, GroupRightLeg,
			Rect{X: cx + halfTorso - b.LegWidth - limbInset, Y: l.LegsY, Width: b.LegWidth, Height: b.LegHeight}, limbRadius, style),
		rectPrim("left-arm", LayerBody, GroupLeftArm,
			Rect{X: cx - halfTorso - b.ArmWidth - limbInset, Y: armY, Width: b.ArmWidth, Height: b.ArmHeight}, limbRadius, style),
		rectPrim("right-arm", LayerBody, GroupRightArm,
			Rect{X: cx + halfTorso + limbInset, Y: armY, Width: b.ArmWidth, Height: b.ArmHeight}, limbRadius, style),
	}
}
