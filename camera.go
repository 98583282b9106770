package figurine

import "math"

// upperBodyDivisor is the fraction of the canvas height kept by the upper-body
// camera: the crop height is height / upperBodyDivisor.
const upperBodyDivisor = 1.8

// CameraViewport returns the crop rectangle for a camera view on a canvas of
// the given size. The crop always starts at the top-left and keeps the full
// width; "upper" keeps the top height/1.8, anything else the whole canvas.
func CameraViewport(view CameraView, width, height float64) Rect {
	if view == CameraUpper {
		return Rect{Width: width, Height: height / upperBodyDivisor}
	}
	return Rect{Width: width, Height: height}
}

// FitAspect grows vp to the ratio so the crop content is shown whole
// ("meet"): centered horizontally and anchored to the bottom edge, matching
// how the preview frames the figure. An unknown ratio returns vp unchanged.
func FitAspect(vp Rect, ratio AspectRatio) Rect {
	target, ok := ratio.Value()
	if !ok || vp.Width <= 0 || vp.Height <= 0 {
		return vp
	}
	current := vp.Width / vp.Height
	switch {
	case current < target:
		w := vp.Height * target
		vp.X -= (w - vp.Width) / 2
		vp.Width = w
	case current > target:
		h := vp.Width / target
		vp.Y -= h - vp.Height
		vp.Height = h
	}
	return vp
}

// ViewTransform maps scene coordinates inside vp onto a destination of size
// (dstW, dstH), scaling uniformly to fit and centering the leftover space.
//
//	view = Translate(offset) * Scale(zoom) * Translate(-vp.X, -vp.Y)
func ViewTransform(vp Rect, dstW, dstH float64) Matrix {
	if vp.Width <= 0 || vp.Height <= 0 {
		return Identity
	}
	zoom := math.Min(dstW/vp.Width, dstH/vp.Height)
	ox := (dstW - vp.Width*zoom) / 2
	oy := (dstH - vp.Height*zoom) / 2
	return Translate(ox, oy).Multiply(Scale(zoom, zoom)).Multiply(Translate(-vp.X, -vp.Y))
}

// VisibleBounds returns the axis-aligned bounds of rect r after m.
func VisibleBounds(m Matrix, r Rect) Rect {
	p0 := m.Apply(Vec2{r.X, r.Y})
	p1 := m.Apply(Vec2{r.X + r.Width, r.Y})
	p2 := m.Apply(Vec2{r.X + r.Width, r.Y + r.Height})
	p3 := m.Apply(Vec2{r.X, r.Y + r.Height})

	minX := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
