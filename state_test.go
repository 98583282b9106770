package figurine

import "testing"

func TestPresentationNormalizeKeepsKnown(t *testing.T) {
	s := DefaultPresentationState()
	got, diags := s.Normalize()
	if got != s || len(diags) != 0 {
		t.Errorf("default state changed: %+v %v", got, diags)
	}
}

func TestPresentationNormalizeFallbacks(t *testing.T) {
	s := PresentationState{
		Animation:   "dance",
		Expression:  "wink",
		Pose:        "back",
		CameraView:  "drone",
		Background:  "space",
		CaptureMode: true,
	}
	got, diags := s.Normalize()
	want := PresentationState{
		Animation:   AnimationIdle,
		Expression:  ExpressionNeutral,
		Pose:        PoseFront,
		CameraView:  CameraFull,
		Background:  BackgroundTransparent,
		CaptureMode: true,
	}
	if got != want {
		t.Errorf("normalized = %+v, want %+v", got, want)
	}
	fields := []string{"animationState", "expressionState", "pose", "cameraView", "background"}
	if len(diags) != len(fields) {
		t.Fatalf("diagnostics = %v", diags)
	}
	for i, d := range diags {
		if d.Field != fields[i] || d.Kind != InvalidTraitValue {
			t.Errorf("diagnostic %d = %v", i, d)
		}
	}
	if diags[4].Value != "space" || diags[4].Fallback != "transparent" {
		t.Errorf("background diagnostic = %v", diags[4])
	}
}

func TestAspectRatioValue(t *testing.T) {
	tests := []struct {
		a    AspectRatio
		want float64
		ok   bool
	}{
		{AspectPortrait, 0.5625, true},
		{AspectSquare, 1, true},
		{AspectLandscape, 16.0 / 9.0, true},
		{"4:3", 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.a.Value()
		if ok != tt.ok {
			t.Errorf("%s ok = %v", tt.a, ok)
		}
		assertNear(t, string(tt.a), got, tt.want)
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultPresentationState()
	base.Background = BackgroundOutdoor
	tests := []struct {
		preset Preset
		camera CameraView
		ratio  AspectRatio
	}{
		{PresetReel, CameraFull, AspectPortrait},
		{PresetPromo, CameraFull, AspectSquare},
		{PresetTalkingHead, CameraUpper, AspectPortrait},
		{Preset("cinema"), base.CameraView, AspectPortrait},
	}
	for _, tt := range tests {
		s, ratio := ApplyPreset(base, tt.preset)
		if s.Background != BackgroundStudio || s.CameraView != tt.camera || ratio != tt.ratio {
			t.Errorf("%q: state %+v ratio %s", tt.preset, s, ratio)
		}
		if s.Expression != base.Expression || s.Animation != base.Animation {
			t.Errorf("%q changed unrelated fields", tt.preset)
		}
	}
}

func TestActivePresetRoundTrip(t *testing.T) {
	for _, p := range []Preset{PresetReel, PresetPromo, PresetTalkingHead} {
		s, ratio := ApplyPreset(DefaultPresentationState(), p)
		if got := ActivePreset(s, ratio); got != p {
			t.Errorf("ActivePreset after %s = %q", p, got)
		}
	}
}

func TestActivePresetNone(t *testing.T) {
	s := DefaultPresentationState()
	s.Background = BackgroundIndoor
	if got := ActivePreset(s, AspectPortrait); got != PresetNone {
		t.Errorf("non-studio background matched %q", got)
	}
	s.Background = BackgroundStudio
	s.CameraView = CameraUpper
	if got := ActivePreset(s, AspectLandscape); got != PresetNone {
		t.Errorf("landscape upper matched %q", got)
	}
}
