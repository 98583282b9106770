package figurine

// LipsPath selects the mouth outline for an expression, centered at (cx, y).
// It is a pure function of its inputs.
//
//	smile    open upward-bowed cubic
//	serious  flat horizontal stroke
//	talking  closed dropped-jaw shape
//	neutral  closed double curve (also the fallback)
func LipsPath(expr ExpressionState, cx, y, width, height float64) Path {
	var p Path
	half := width / 2
	switch expr {
	case ExpressionSmile:
		p.MoveTo(cx-half, y+2)
		p.CubicTo(cx-width/4, y+height, cx+width/4, y+height, cx+half, y+2)
	case ExpressionSerious:
		p.MoveTo(cx-half, y+height/2)
		p.HLineTo(cx + half)
	case ExpressionTalking:
		p.MoveTo(cx-half, y)
		p.QuadTo(cx, y+height, cx+half, y)
		p.Close()
	default:
		p.MoveTo(cx-half, y)
		p.QuadTo(cx, y+height/2, cx+half, y)
		p.QuadTo(cx, y+height/4, cx-half, y)
	}
	return p
}

// BuildLips emits the mouth primitive for the expression. A talking mouth
// carries a continuous open/close binding unless capture is true, in which
// case it keeps its fixed open shape with no binding at all.
func BuildLips(expr ExpressionState, cx, y, width, height float64, capture bool) Primitive {
	style := Style{Fill: Solid(lipsFill)}
	if expr == ExpressionSerious {
		style = Style{Fill: Paint{Kind: PaintNone}, Stroke: lipsStroke, StrokeWidth: 1.5}
	}
	prim := pathPrim("lips", LayerFace, GroupMouth, LipsPath(expr, cx, y, width, height), style)
	if expr == ExpressionTalking && !capture {
		b := newBinding(LoopTalking, GroupMouth, prim.Bounds(), 0, false)
		prim.Animation = &b
	}
	return prim
}
