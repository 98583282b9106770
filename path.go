package figurine

import (
	"math"
	"strconv"
	"strings"
)

// PathOp identifies a path command.
type PathOp uint8

const (
	OpMoveTo  PathOp = iota // start a subpath at Points[0]
	OpLineTo                // straight segment to Points[0]
	OpQuadTo                // quadratic Bézier via Points[0] to Points[1]
	OpCubicTo               // cubic Bézier via Points[0], Points[1] to Points[2]
	OpClose                 // close the current subpath
)

// PathCommand is one element of a Path. Only the first N points are used,
// where N depends on Op.
type PathCommand struct {
	Op     PathOp
	Points [3]Vec2
}

// Path is an ordered list of drawing commands in absolute coordinates.
// The zero Path is empty and ready to use. Builder methods return the path
// so calls can be chained.
type Path struct {
	Commands []PathCommand
	cur      Vec2
	start    Vec2
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Vec2{x, y}
	p.Commands = append(p.Commands, PathCommand{Op: OpMoveTo, Points: [3]Vec2{pt}})
	p.cur, p.start = pt, pt
	return p
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) *Path {
	pt := Vec2{x, y}
	p.Commands = append(p.Commands, PathCommand{Op: OpLineTo, Points: [3]Vec2{pt}})
	p.cur = pt
	return p
}

// HLineTo adds a horizontal segment to x.
func (p *Path) HLineTo(x float64) *Path {
	return p.LineTo(x, p.cur.Y)
}

// VLineTo adds a vertical segment to y.
func (p *Path) VLineTo(y float64) *Path {
	return p.LineTo(p.cur.X, y)
}

// QuadTo adds a quadratic Bézier with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	pt := Vec2{x, y}
	p.Commands = append(p.Commands, PathCommand{Op: OpQuadTo, Points: [3]Vec2{{cx, cy}, pt}})
	p.cur = pt
	return p
}

// CubicTo adds a cubic Bézier with control points (c1x, c1y) and (c2x, c2y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	pt := Vec2{x, y}
	p.Commands = append(p.Commands, PathCommand{Op: OpCubicTo, Points: [3]Vec2{{c1x, c1y}, {c2x, c2y}, pt}})
	p.cur = pt
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Commands = append(p.Commands, PathCommand{Op: OpClose})
	p.cur = p.start
	return p
}

// LineSegments counts OpLineTo commands.
func (p Path) LineSegments() int {
	return p.count(OpLineTo)
}

// CurveSegments counts quadratic and cubic commands.
func (p Path) CurveSegments() int {
	return p.count(OpQuadTo) + p.count(OpCubicTo)
}

// Closed reports whether any subpath is closed.
func (p Path) Closed() bool {
	return p.count(OpClose) > 0
}

// Smooth reports whether the path is drawn only with curves.
func (p Path) Smooth() bool {
	return p.LineSegments() == 0 && p.CurveSegments() > 0
}

func (p Path) count(op PathOp) int {
	n := 0
	for _, c := range p.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Transform returns a copy of the path with every point mapped through m.
func (p Path) Transform(m Matrix) Path {
	out := Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, c := range p.Commands {
		out.Commands[i].Op = c.Op
		for j := 0; j < pointsPerOp(c.Op); j++ {
			out.Commands[i].Points[j] = m.Apply(c.Points[j])
		}
	}
	out.cur = m.Apply(p.cur)
	out.start = m.Apply(p.start)
	return out
}

// Bounds returns the bounding box of every point and control point. It is
// conservative for curves.
func (p Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, c := range p.Commands {
		for j := 0; j < pointsPerOp(c.Op); j++ {
			pt := c.Points[j]
			if first {
				minX, maxX, minY, maxY = pt.X, pt.X, pt.Y, pt.Y
				first = false
				continue
			}
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Vec2
	Closed bool
}

// Flatten approximates the path with straight segments, subdividing each
// curve into segs pieces (default 16 when segs <= 0).
func (p Path) Flatten(segs int) []Polyline {
	if segs <= 0 {
		segs = 16
	}
	var out []Polyline
	var cur *Polyline
	var last Vec2
	for _, c := range p.Commands {
		switch c.Op {
		case OpMoveTo:
			out = append(out, Polyline{Points: []Vec2{c.Points[0]}})
			cur = &out[len(out)-1]
			last = c.Points[0]
		case OpLineTo:
			if cur == nil {
				out = append(out, Polyline{Points: []Vec2{last}})
				cur = &out[len(out)-1]
			}
			cur.Points = append(cur.Points, c.Points[0])
			last = c.Points[0]
		case OpQuadTo:
			if cur == nil {
				out = append(out, Polyline{Points: []Vec2{last}})
				cur = &out[len(out)-1]
			}
			a, ctl, b := last, c.Points[0], c.Points[1]
			for i := 1; i <= segs; i++ {
				t := float64(i) / float64(segs)
				u := 1 - t
				cur.Points = append(cur.Points, Vec2{
					X: u*u*a.X + 2*u*t*ctl.X + t*t*b.X,
					Y: u*u*a.Y + 2*u*t*ctl.Y + t*t*b.Y,
				})
			}
			last = b
		case OpCubicTo:
			if cur == nil {
				out = append(out, Polyline{Points: []Vec2{last}})
				cur = &out[len(out)-1]
			}
			a, c1, c2, b := last, c.Points[0], c.Points[1], c.Points[2]
			for i := 1; i <= segs; i++ {
				t := float64(i) / float64(segs)
				u := 1 - t
				u2 := u * u
				t2 := t * t
				cur.Points = append(cur.Points, Vec2{
					X: u2*u*a.X + 3*u2*t*c1.X + 3*u*t2*c2.X + t2*t*b.X,
					Y: u2*u*a.Y + 3*u2*t*c1.Y + 3*u*t2*c2.Y + t2*t*b.Y,
				})
			}
			last = b
		case OpClose:
			if cur != nil {
				cur.Closed = true
				last = cur.Points[0]
				cur = nil
			}
		}
	}
	return out
}

// String renders the path as SVG path data.
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMoveTo:
			b.WriteString("M ")
		case OpLineTo:
			b.WriteString("L ")
		case OpQuadTo:
			b.WriteString("Q ")
		case OpCubicTo:
			b.WriteString("C ")
		case OpClose:
			b.WriteString("Z")
			continue
		}
		for j := 0; j < pointsPerOp(c.Op); j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatFloat(c.Points[j].X))
			b.WriteByte(' ')
			b.WriteString(formatFloat(c.Points[j].Y))
		}
	}
	return b.String()
}

func pointsPerOp(op PathOp) int {
	switch op {
	case OpMoveTo, OpLineTo:
		return 1
	case OpQuadTo:
		return 2
	case OpCubicTo:
		return 3
	default:
		return 0
	}
}

// formatFloat prints v with at most four decimals and no trailing zeros.
func formatFloat(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatFloat is the number format used in path data and exporters.
func FormatFloat(v float64) string {
	return formatFloat(v)
}

// kappa is the cubic control distance that approximates a quarter ellipse.
const kappa = 0.5522847498307936

// EllipsePath returns a closed four-arc approximation of an ellipse.
func EllipsePath(c Vec2, rx, ry float64) Path {
	var p Path
	ox, oy := rx*kappa, ry*kappa
	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+oy, c.X+ox, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-ox, c.Y+ry, c.X-rx, c.Y+oy, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-oy, c.X-ox, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+ox, c.Y-ry, c.X+rx, c.Y-oy, c.X+rx, c.Y)
	p.Close()
	return p
}

// RoundedRectPath returns a closed rectangle whose corners are rounded by r,
// clamped to half the shorter side.
func RoundedRectPath(rc Rect, r float64) Path {
	r = math.Max(0, math.Min(r, math.Min(rc.Width, rc.Height)/2))
	var p Path
	x0, y0 := rc.X, rc.Y
	x1, y1 := rc.X+rc.Width, rc.Y+rc.Height
	if r == 0 {
		p.MoveTo(x0, y0).LineTo(x1, y0).LineTo(x1, y1).LineTo(x0, y1).Close()
		return p
	}
	o := r * kappa
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.CubicTo(x1-r+o, y0, x1, y0+r-o, x1, y0+r)
	p.LineTo(x1, y1-r)
	p.CubicTo(x1, y1-r+o, x1-r+o, y1, x1-r, y1)
	p.LineTo(x0+r, y1)
	p.CubicTo(x0+r-o, y1, x0, y1-r+o, x0, y1-r)
	p.LineTo(x0, y0+r)
	p.CubicTo(x0, y0+r-o, x0+r-o, y0, x0+r, y0)
	p.Close()
	return p
}
