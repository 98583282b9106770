package figurine

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LoopID names a declared animation loop.
type LoopID string

const (
	LoopIdleBreath LoopID = "idle-breath" // subtle vertical breathing of the torso
	LoopWalkSwing  LoopID = "walk-swing"  // limb swing; opposite limbs run half a cycle apart
	LoopPointHold  LoopID = "point-loop"  // right arm raised and held with a small bob
	LoopTalking    LoopID = "talking"     // mouth open/close
)

// LoopPose is one sampled state of a loop, applied to a primitive as
// rotate(RotateDeg) translate(TranslateX, TranslateY) scaleY(ScaleY) about
// the binding pivot.
type LoopPose struct {
	ScaleY     float64
	RotateDeg  float64
	TranslateX float64
	TranslateY float64
}

// Matrix returns the pose as an affine matrix acting about pivot.
func (k LoopPose) Matrix(pivot Vec2) Matrix {
	m := Rotate(degToRad(k.RotateDeg)).
		Multiply(Translate(k.TranslateX, k.TranslateY)).
		Multiply(Scale(1, k.ScaleY))
	return About(m, pivot)
}

// Loop is a two-keyframe cycle: Rest at phase 0 and 1, Peak at phase 0.5,
// eased in and out between them.
type Loop struct {
	ID       LoopID
	Duration float64 // seconds per cycle
	Rest     LoopPose
	Peak     LoopPose
}

var loops = map[LoopID]Loop{
	LoopIdleBreath: {
		ID: LoopIdleBreath, Duration: 3,
		Rest: LoopPose{ScaleY: 1},
		Peak: LoopPose{ScaleY: 1.02},
	},
	LoopWalkSwing: {
		ID: LoopWalkSwing, Duration: 1.5,
		Rest: LoopPose{ScaleY: 1, RotateDeg: -20},
		Peak: LoopPose{ScaleY: 1, RotateDeg: 15},
	},
	LoopPointHold: {
		ID: LoopPointHold, Duration: 2,
		Rest: LoopPose{ScaleY: 0.95, RotateDeg: -110, TranslateX: -10, TranslateY: 10},
		Peak: LoopPose{ScaleY: 1, RotateDeg: -120, TranslateX: -10, TranslateY: 10},
	},
	LoopTalking: {
		ID: LoopTalking, Duration: 0.5,
		Rest: LoopPose{ScaleY: 0.3},
		Peak: LoopPose{ScaleY: 1},
	},
}

// LookupLoop returns the declared loop with the given id.
func LookupLoop(id LoopID) (Loop, bool) {
	l, ok := loops[id]
	return l, ok
}

// At samples the loop at a cycle phase; phase is wrapped into [0, 1).
func (l Loop) At(phase float64) LoopPose {
	phase -= math.Floor(phase)
	half := l.Duration / 2
	t := phase * l.Duration
	from, to := l.Rest, l.Peak
	if t >= half {
		from, to = l.Peak, l.Rest
		t -= half
	}
	return LoopPose{
		ScaleY:     tweenAt(from.ScaleY, to.ScaleY, half, t),
		RotateDeg:  tweenAt(from.RotateDeg, to.RotateDeg, half, t),
		TranslateX: tweenAt(from.TranslateX, to.TranslateX, half, t),
		TranslateY: tweenAt(from.TranslateY, to.TranslateY, half, t),
	}
}

// tweenAt evaluates an ease-in-out tween from -> to of the given duration at
// time t.
func tweenAt(from, to, duration, t float64) float64 {
	if from == to {
		return from
	}
	v, _ := gween.New(float32(from), float32(to), float32(duration), ease.InOutSine).Set(float32(t))
	return float64(v)
}

// AnimationBinding attaches a declared loop to one primitive. The engine only
// declares bindings; a host animator samples them against its own clock.
type AnimationBinding struct {
	Loop     LoopID
	Group    PartGroup
	Duration float64 // seconds per cycle, copied from the loop
	Phase    float64 // cycle offset in [0, 1)
	Pivot    Vec2    // transform origin in the primitive's coordinates
	// Frozen bindings always sample their phase-zero pose so every frame of a
	// capture is identical.
	Frozen bool
}

// Sample returns the loop pose at host time t seconds. Frozen bindings ignore t.
func (b AnimationBinding) Sample(t float64) LoopPose {
	l, ok := LookupLoop(b.Loop)
	if !ok || l.Duration <= 0 {
		return LoopPose{ScaleY: 1}
	}
	if b.Frozen {
		t = 0
	}
	return l.At(t/l.Duration + b.Phase)
}

// MatrixAt returns the binding's transform at host time t, to be applied
// before the primitive's own Transform.
func (b AnimationBinding) MatrixAt(t float64) Matrix {
	return b.Sample(t).Matrix(b.Pivot)
}

// newBinding builds a binding whose pivot follows the group's transform
// origin inside bounds: torso and mouth scale about their center, limbs swing
// from the top.
func newBinding(id LoopID, group PartGroup, bounds Rect, phase float64, frozen bool) AnimationBinding {
	pivot := bounds.Center()
	switch group {
	case GroupLeftArm, GroupRightArm, GroupLeftLeg, GroupRightLeg:
		pivot = bounds.TopCenter()
	}
	l, _ := LookupLoop(id)
	return AnimationBinding{
		Loop:     id,
		Group:    group,
		Duration: l.Duration,
		Phase:    phase,
		Pivot:    pivot,
		Frozen:   frozen,
	}
}

// LoopAssignment binds one part group to a loop at a phase offset.
type LoopAssignment struct {
	Group PartGroup
	Loop  LoopID
	Phase float64
}

var stateLoops = map[AnimationState][]LoopAssignment{
	AnimationIdle: {
		{Group: GroupTorso, Loop: LoopIdleBreath},
	},
	AnimationWalk: {
		{Group: GroupLeftLeg, Loop: LoopWalkSwing},
		{Group: GroupRightArm, Loop: LoopWalkSwing},
		{Group: GroupRightLeg, Loop: LoopWalkSwing, Phase: 0.5},
		{Group: GroupLeftArm, Loop: LoopWalkSwing, Phase: 0.5},
	},
	AnimationPointing: {
		{Group: GroupRightArm, Loop: LoopPointHold},
	},
}

// StateLoops returns the loop assignments active in an animation state.
// Unknown states have none.
func StateLoops(s AnimationState) []LoopAssignment {
	return stateLoops[s]
}

// BindAnimations returns a copy of prims with the state's loops bound to
// every primitive in a matching part group. Switching state is a plain rebind:
// bindings from any earlier state are discarded, except the mouth binding,
// which is owned by the expression. With capture set every binding is marked
// frozen rather than removed.
//
// Every primitive in a group pivots on the group's first primitive, so
// garments and the logo move with the body part they cover.
func BindAnimations(state AnimationState, capture bool, prims []Primitive) []Primitive {
	out := make([]Primitive, len(prims))
	copy(out, prims)
	assign := StateLoops(state)
	anchors := map[PartGroup]Rect{}
	for _, p := range out {
		if _, ok := anchors[p.Group]; !ok && p.Group != GroupNone {
			anchors[p.Group] = p.Bounds()
		}
	}
	for i := range out {
		if out[i].Group == GroupMouth {
			continue
		}
		out[i].Animation = nil
		for _, a := range assign {
			if a.Group != out[i].Group {
				continue
			}
			b := newBinding(a.Loop, a.Group, anchors[a.Group], a.Phase, capture)
			out[i].Animation = &b
			break
		}
	}
	return out
}
