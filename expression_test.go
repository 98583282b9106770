package figurine

import (
	"reflect"
	"testing"
)

func TestLipsPathShapes(t *testing.T) {
	tests := []struct {
		expr   ExpressionState
		lines  int
		curves int
		closed bool
	}{
		{ExpressionSmile, 0, 1, false},
		{ExpressionSerious, 1, 0, false},
		{ExpressionTalking, 0, 1, true},
		{ExpressionNeutral, 0, 2, false},
		{ExpressionState("smirk"), 0, 2, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.expr), func(t *testing.T) {
			p := LipsPath(tt.expr, 50, 60, 20, 6)
			if p.LineSegments() != tt.lines || p.CurveSegments() != tt.curves || p.Closed() != tt.closed {
				t.Errorf("%s: lines %d curves %d closed %v", p, p.LineSegments(), p.CurveSegments(), p.Closed())
			}
		})
	}
}

func TestLipsPathPure(t *testing.T) {
	a := LipsPath(ExpressionSmile, 50, 60, 20, 6)
	b := LipsPath(ExpressionSmile, 50, 60, 20, 6)
	if !reflect.DeepEqual(a, b) {
		t.Error("LipsPath not deterministic")
	}
}

func TestBuildLipsSerious(t *testing.T) {
	lips := BuildLips(ExpressionSerious, 50, 60, 20, 4, false)
	if lips.Style.HasFill() {
		t.Error("serious mouth is filled")
	}
	if !lips.Style.HasStroke() || lips.Style.Stroke != lipsStroke {
		t.Error("serious mouth must be a lips-colored stroke")
	}
}

func TestBuildLipsTalkingBinding(t *testing.T) {
	live := BuildLips(ExpressionTalking, 50, 60, 20, 6, false)
	if live.Animation == nil || live.Animation.Loop != LoopTalking {
		t.Fatalf("live talking binding = %+v, want talking loop", live.Animation)
	}
	assertVec(t, "pivot", live.Animation.Pivot, live.Bounds().Center())

	captured := BuildLips(ExpressionTalking, 50, 60, 20, 6, true)
	if captured.Animation != nil {
		t.Error("captured talking mouth still carries a binding")
	}
	if captured.Path.CurveSegments() == 0 {
		t.Error("captured talking mouth has no shape")
	}
}

func TestBuildLipsOtherExpressionsStatic(t *testing.T) {
	for _, e := range []ExpressionState{ExpressionNeutral, ExpressionSmile, ExpressionSerious} {
		if BuildLips(e, 0, 0, 20, 4, false).Animation != nil {
			t.Errorf("%s mouth has a binding", e)
		}
	}
}
