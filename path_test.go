package figurine

import "testing"

func TestPathBuilder(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).HLineTo(10).VLineTo(5).QuadTo(5, 10, 0, 5).Close()

	if got := p.LineSegments(); got != 2 {
		t.Errorf("LineSegments = %d, want 2", got)
	}
	if got := p.CurveSegments(); got != 1 {
		t.Errorf("CurveSegments = %d, want 1", got)
	}
	if !p.Closed() {
		t.Error("path not closed")
	}
	if got, want := p.String(), "M 0 0 L 10 0 L 10 5 Q 5 10 0 5 Z"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

func TestPathSmooth(t *testing.T) {
	var curve Path
	curve.MoveTo(0, 0).CubicTo(1, 1, 2, 1, 3, 0)
	if !curve.Smooth() {
		t.Error("cubic-only path not smooth")
	}
	var poly Path
	poly.MoveTo(0, 0).LineTo(1, 1)
	if poly.Smooth() {
		t.Error("line path reported smooth")
	}
}

func TestPathBounds(t *testing.T) {
	var p Path
	p.MoveTo(-5, 2).LineTo(10, 8).LineTo(3, -1)
	b := p.Bounds()
	assertNear(t, "x", b.X, -5)
	assertNear(t, "y", b.Y, -1)
	assertNear(t, "w", b.Width, 15)
	assertNear(t, "h", b.Height, 9)
}

func TestPathTransform(t *testing.T) {
	var p Path
	p.MoveTo(1, 2).LineTo(3, 4)
	q := p.Transform(Translate(10, 20))
	assertVec(t, "p0", q.Commands[0].Points[0], Vec2{11, 22})
	assertVec(t, "p1", q.Commands[1].Points[0], Vec2{13, 24})
	// The source is untouched.
	assertVec(t, "src", p.Commands[0].Points[0], Vec2{1, 2})
}

func TestFlattenCurveEndpoints(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).CubicTo(0, 10, 10, 10, 10, 0).Close()
	polys := p.Flatten(8)
	if len(polys) != 1 {
		t.Fatalf("polylines = %d, want 1", len(polys))
	}
	pl := polys[0]
	if len(pl.Points) != 9 {
		t.Errorf("points = %d, want 9", len(pl.Points))
	}
	assertVec(t, "end", pl.Points[len(pl.Points)-1], Vec2{10, 0})
	// Symmetric control points put the midpoint at t=0.5, y=7.5.
	assertVec(t, "mid", pl.Points[4], Vec2{5, 7.5})
	if !pl.Closed {
		t.Error("polyline not closed")
	}
}

func TestFlattenSubpaths(t *testing.T) {
	var p Path
	p.MoveTo(0, 0).LineTo(1, 0).MoveTo(5, 5).LineTo(6, 5)
	if got := len(p.Flatten(0)); got != 2 {
		t.Errorf("subpaths = %d, want 2", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{-0.00001, "0"},
		{1.5, "1.5"},
		{2.123456, "2.1235"},
		{-3, "-3"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundedRectPath(t *testing.T) {
	sharp := RoundedRectPath(Rect{Width: 10, Height: 4}, 0)
	if sharp.CurveSegments() != 0 || sharp.LineSegments() != 3 {
		t.Errorf("sharp rect = %d lines, %d curves", sharp.LineSegments(), sharp.CurveSegments())
	}
	round := RoundedRectPath(Rect{Width: 10, Height: 4}, 50)
	if round.CurveSegments() != 4 {
		t.Errorf("rounded corners = %d, want 4", round.CurveSegments())
	}
	b := round.Bounds()
	assertNear(t, "w", b.Width, 10)
	assertNear(t, "h", b.Height, 4)
}

func TestEllipsePathBounds(t *testing.T) {
	b := EllipsePath(Vec2{10, 20}, 5, 3).Bounds()
	assertNear(t, "x", b.X, 5)
	assertNear(t, "y", b.Y, 17)
	assertNear(t, "w", b.Width, 10)
	assertNear(t, "h", b.Height, 6)
}
