// Package ebitenraster draws figurine scenes with Ebitengine.
//
// Every primitive is flattened to polylines in destination space. Fills are
// fan-triangulated and drawn with the non-zero fill rule, so concave outlines
// such as the hair and chin come out right; strokes are mitered triangle
// strips. Animation bindings are sampled at [Options.Time].
package ebitenraster

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/figurine"
)

// defaultCurveSegments is the number of pieces each curve is flattened into.
const defaultCurveSegments = 16

// maxMiterScale caps joint extension at sharp corners.
const maxMiterScale = 2.0

// Options configures Draw. The zero value draws the scene at time zero,
// framed by its own viewport and fitted to the destination.
type Options struct {
	// Time is the host clock in seconds used to sample animation bindings.
	// It has no effect on frozen scenes.
	Time float64

	// Viewport overrides scene.Viewport when non-empty, e.g. after
	// figurine.FitAspect.
	Viewport figurine.Rect

	// CurveSegments is the number of straight pieces per curve (default 16).
	CurveSegments int

	// AntiAlias enables Ebitengine's anti-aliased triangle rendering.
	AntiAlias bool
}

// mesh is one DrawTriangles32 call.
type mesh struct {
	verts []ebiten.Vertex
	inds  []uint32
	rule  ebiten.FillRule
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source for every solid and gradient fill.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Draw renders scene onto dst, back to front.
func Draw(dst *ebiten.Image, scene *figurine.Scene, opts Options) {
	if scene == nil {
		return
	}
	b := dst.Bounds()
	white := ensureWhitePixel()
	for _, m := range tessellate(scene, opts, float64(b.Dx()), float64(b.Dy())) {
		var triOp ebiten.DrawTrianglesOptions
		triOp.FillRule = m.rule
		triOp.AntiAlias = opts.AntiAlias
		dst.DrawTriangles32(m.verts, m.inds, white, &triOp)
	}
}

// tessellate converts the scene into triangle meshes for a destination of
// size (w, h). It performs no GPU work.
func tessellate(scene *figurine.Scene, opts Options, w, h float64) []mesh {
	vp := scene.Viewport
	if opts.Viewport.Width > 0 && opts.Viewport.Height > 0 {
		vp = opts.Viewport
	}
	segs := opts.CurveSegments
	if segs <= 0 {
		segs = defaultCurveSegments
	}
	view := figurine.ViewTransform(vp, w, h)

	var out []mesh
	for _, p := range scene.Primitives {
		m := PrimitiveMatrix(view, p, opts.Time)
		polys := p.Outline().Transform(m).Flatten(segs)
		alpha := p.Style.EffectiveOpacity()

		if p.Style.HasFill() && p.Kind != figurine.ShapeLine {
			if fill, ok := fillMesh(polys, p.Style.Fill, alpha); ok {
				out = append(out, fill)
			}
		}
		if p.Style.HasStroke() {
			width := p.Style.StrokeWidth * matrixScale(m)
			if stroke, ok := strokeMesh(polys, width, p.Style.Stroke, alpha); ok {
				out = append(out, stroke)
			}
		}
	}
	return out
}

// PrimitiveMatrix returns the full destination transform of p at time t:
// view * p.Transform * binding(t).
func PrimitiveMatrix(view figurine.Matrix, p figurine.Primitive, t float64) figurine.Matrix {
	m := view.Multiply(p.Transform)
	if p.Animation != nil {
		m = m.Multiply(p.Animation.MatrixAt(t))
	}
	return m
}

// matrixScale returns the uniform scale factor of m, used to scale stroke
// widths along with the geometry.
func matrixScale(m figurine.Matrix) float64 {
	det := m[0]*m[3] - m[1]*m[2]
	return math.Sqrt(math.Abs(det))
}

func fillMesh(polys []figurine.Polyline, paint figurine.Paint, alpha float64) (mesh, bool) {
	m := mesh{rule: ebiten.FillRuleNonZero}
	for _, pl := range polys {
		if len(pl.Points) < 3 {
			continue
		}
		switch paint.Kind {
		case figurine.PaintRadialGradient:
			appendGradientFan(&m, pl.Points, paint.Stops, alpha)
		default:
			appendFan(&m, pl.Points, paint.Color, alpha)
		}
	}
	return m, len(m.inds) > 0
}

// appendFan adds a fan-triangulated polygon. With the non-zero rule the fan
// covers concave polygons correctly.
func appendFan(m *mesh, points []figurine.Vec2, c figurine.Color, alpha float64) {
	base := uint32(len(m.verts))
	for _, p := range points {
		m.verts = append(m.verts, vertex(p, c, alpha))
	}
	for i := 1; i < len(points)-1; i++ {
		m.inds = append(m.inds, base, base+uint32(i), base+uint32(i+1))
	}
}

// appendGradientFan approximates a radial gradient centred on the polygon's
// bounding box with one ring of vertices per stop.
func appendGradientFan(m *mesh, points []figurine.Vec2, stops []figurine.GradientStop, alpha float64) {
	if len(stops) == 0 {
		return
	}
	if len(stops) == 1 {
		appendFan(m, points, stops[0].Color, alpha)
		return
	}
	m.rule = ebiten.FillRuleFillAll
	center := polylineBounds(points).Center()
	base := uint32(len(m.verts))
	m.verts = append(m.verts, vertex(center, stops[0].Color, alpha))

	n := uint32(len(points))
	ring := func(k int) uint32 { return base + 1 + uint32(k)*n }
	for _, s := range stops {
		for _, p := range points {
			q := figurine.Vec2{
				X: center.X + (p.X-center.X)*s.Offset,
				Y: center.Y + (p.Y-center.Y)*s.Offset,
			}
			m.verts = append(m.verts, vertex(q, s.Color, alpha))
		}
	}
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		r0 := ring(0)
		m.inds = append(m.inds, base, r0+i, r0+j)
		for k := 0; k < len(stops)-1; k++ {
			a, b := ring(k), ring(k+1)
			m.inds = append(m.inds, a+i, b+i, b+j, a+i, b+j, a+j)
		}
	}
}

// strokeMesh builds mitered strips along every polyline. Strip triangles may
// overlap at tight joints, so they are drawn without a fill rule.
func strokeMesh(polys []figurine.Polyline, width float64, c figurine.Color, alpha float64) (mesh, bool) {
	m := mesh{rule: ebiten.FillRuleFillAll}
	if width <= 0 {
		return m, false
	}
	for _, pl := range polys {
		appendStrip(&m, pl, width/2, c, alpha)
	}
	return m, len(m.inds) > 0
}

func appendStrip(m *mesh, pl figurine.Polyline, halfW float64, c figurine.Color, alpha float64) {
	points := dedupe(pl.Points)
	if pl.Closed && len(points) > 2 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	n := len(points)
	if n < 2 {
		return
	}
	closed := pl.Closed && n > 2

	base := uint32(len(m.verts))
	for i := 0; i < n; i++ {
		var nx, ny float64
		switch {
		case closed:
			nx, ny = miter(points[(i+n-1)%n], points[i], points[(i+1)%n])
		case i == 0:
			nx, ny = perpendicular(points[0], points[1])
		case i == n-1:
			nx, ny = perpendicular(points[n-2], points[n-1])
		default:
			nx, ny = miter(points[i-1], points[i], points[i+1])
		}
		p := points[i]
		m.verts = append(m.verts,
			vertex(figurine.Vec2{X: p.X + nx*halfW, Y: p.Y + ny*halfW}, c, alpha),
			vertex(figurine.Vec2{X: p.X - nx*halfW, Y: p.Y - ny*halfW}, c, alpha),
		)
	}

	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		v := base + uint32(i*2)
		next := base + uint32(((i+1)%n)*2)
		m.inds = append(m.inds, v, v+1, next, v+1, next+1, next)
	}
}

// miter returns the joint normal at b, scaled so the strip keeps its width
// through the corner.
func miter(a, b, c figurine.Vec2) (float64, float64) {
	nx0, ny0 := perpendicular(a, b)
	nx1, ny1 := perpendicular(b, c)
	nx, ny := nx0+nx1, ny0+ny1
	ln := math.Sqrt(nx*nx + ny*ny)
	if ln < 1e-10 {
		return nx0, ny0
	}
	nx /= ln
	ny /= ln
	if dot := nx0*nx + ny0*ny; dot > 0.1 {
		scale := math.Min(1/dot, maxMiterScale)
		nx *= scale
		ny *= scale
	}
	return nx, ny
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b figurine.Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}

// dedupe drops consecutive duplicate points.
func dedupe(points []figurine.Vec2) []figurine.Vec2 {
	out := make([]figurine.Vec2, 0, len(points))
	for i, p := range points {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func polylineBounds(points []figurine.Vec2) figurine.Rect {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return figurine.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// vertex builds a straight-alpha vertex sampling the white pixel.
func vertex(p figurine.Vec2, c figurine.Color, alpha float64) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   0.5,
		SrcY:   0.5,
		ColorR: float32(c.R),
		ColorG: float32(c.G),
		ColorB: float32(c.B),
		ColorA: float32(c.A * alpha),
	}
}
