package figurine

import (
	"reflect"
	"testing"
)

func TestResolveDefaultCharacterClean(t *testing.T) {
	p, diags := Resolve(DefaultCharacter())
	if len(diags) != 0 {
		t.Fatalf("diagnostics for the default character: %v", diags)
	}
	assertNear(t, "BodyTypeMultiplier", p.BodyTypeMultiplier, 1.0)
	assertNear(t, "HeadScaleX", p.HeadScaleX, 1.1)
	assertNear(t, "HeadScaleY", p.HeadScaleY, 1.0)
	assertNear(t, "JawFactor", p.JawFactor, 0.85)
	assertNear(t, "ChinLength", p.ChinLength, 8)
	assertNear(t, "NoseHeight", p.NoseHeight, 8)
	assertNear(t, "LipsHeight", p.LipsHeight, 6)
	assertNear(t, "HairLengthFactor", p.HairLengthFactor, 1.2)
	if got := p.ClothingColor.Hex(); got != "#9d4edd" {
		t.Errorf("ClothingColor = %s, want #9d4edd", got)
	}
	if got := p.EyeColor.Hex(); got != "#800080" {
		t.Errorf("EyeColor (Purple) = %s, want #800080", got)
	}
}

func TestResolveTraitTables(t *testing.T) {
	tests := []struct {
		name  string
		patch CharacterPatch
		check func(Proportions) (float64, float64)
	}{
		{"slim", CharacterPatch{BodyType: Ptr(BodySlim)}, func(p Proportions) (float64, float64) { return p.BodyTypeMultiplier, 0.8 }},
		{"heavy", CharacterPatch{BodyType: Ptr(BodyHeavy)}, func(p Proportions) (float64, float64) { return p.BodyTypeMultiplier, 1.2 }},
		{"long face", CharacterPatch{FaceShape: Ptr(FaceLong)}, func(p Proportions) (float64, float64) { return p.HeadScaleY, 1.15 }},
		{"oval face", CharacterPatch{FaceShape: Ptr(FaceOval)}, func(p Proportions) (float64, float64) { return p.HeadScaleX, 1.0 }},
		{"defined jaw", CharacterPatch{Jawline: Ptr(JawDefined)}, func(p Proportions) (float64, float64) { return p.JawFactor, 0.7 }},
		{"prominent chin", CharacterPatch{Chin: Ptr(ChinProminent)}, func(p Proportions) (float64, float64) { return p.ChinLength, 10 }},
		{"recessed chin", CharacterPatch{Chin: Ptr(ChinRecessed)}, func(p Proportions) (float64, float64) { return p.ChinLength, 2 }},
		{"roman nose", CharacterPatch{Nose: Ptr(NoseRoman)}, func(p Proportions) (float64, float64) { return p.NoseHeight, 14 }},
		{"button nose", CharacterPatch{Nose: Ptr(NoseButton)}, func(p Proportions) (float64, float64) { return p.NoseWidth, 6 }},
		{"wide lips", CharacterPatch{Lips: Ptr(LipsWide)}, func(p Proportions) (float64, float64) { return p.LipsWidth, 24 }},
		{"thin lips", CharacterPatch{Lips: Ptr(LipsThin)}, func(p Proportions) (float64, float64) { return p.LipsHeight, 2 }},
		{"very long hair", CharacterPatch{HairLength: Ptr(HairVeryLong)}, func(p Proportions) (float64, float64) { return p.HairLengthFactor, 1.8 }},
		{"shaved", CharacterPatch{HairLength: Ptr(HairShaved)}, func(p Proportions) (float64, float64) { return p.HairLengthFactor, 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, diags := Resolve(DefaultCharacter().Apply(tt.patch))
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics: %v", diags)
			}
			got, want := tt.check(p)
			assertNear(t, tt.name, got, want)
		})
	}
}

func TestResolveUnknownValuesFallBack(t *testing.T) {
	c := DefaultCharacter().Apply(CharacterPatch{
		BodyType:   Ptr(BodyType("Gigantic")),
		FaceShape:  Ptr(FaceShape("Triangle")),
		Nose:       Ptr(Nose("Hooked")),
		HairLength: Ptr(HairLength("Ankle")),
		SkinTone:   Ptr("not-a-color"),
	})
	p, diags := Resolve(c)
	assertNear(t, "BodyTypeMultiplier", p.BodyTypeMultiplier, 1.0)
	assertNear(t, "HeadScaleX", p.HeadScaleX, 1.0)
	assertNear(t, "HeadScaleY", p.HeadScaleY, 1.1)
	assertNear(t, "NoseHeight", p.NoseHeight, 10)
	assertNear(t, "HairLengthFactor", p.HairLengthFactor, 1.0)
	if got := p.SkinColor.Hex(); got != "#e0ac93" {
		t.Errorf("SkinColor = %s, want fallback #e0ac93", got)
	}

	var fields []string
	for _, d := range diags {
		if d.Kind != InvalidTraitValue {
			t.Errorf("diagnostic %v has kind %v", d, d.Kind)
		}
		fields = append(fields, d.Field)
	}
	want := []string{"bodyType", "faceShape", "nose", "hairLength", "skinTone"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("diagnostic order = %v, want %v", fields, want)
	}
}

func TestResolveClampsNumerics(t *testing.T) {
	c := DefaultCharacter().Apply(CharacterPatch{Height: Ptr(400.0), Weight: Ptr(10.0)})
	p, diags := Resolve(c)
	assertNear(t, "HeightFactor", p.HeightFactor, 1)
	assertNear(t, "WeightFactor", p.WeightFactor, 0)
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %v, want 2", diags)
	}
	if diags[0].Kind != OutOfRangeNumericTrait || diags[0].Fallback != "220" {
		t.Errorf("height diagnostic = %v", diags[0])
	}
	if diags[1].Kind != OutOfRangeNumericTrait || diags[1].Fallback != "40" {
		t.Errorf("weight diagnostic = %v", diags[1])
	}
}

func TestResolveUnknownGarments(t *testing.T) {
	c := DefaultCharacter().Apply(CharacterPatch{Top: Ptr(Top("Cape")), Bottom: Ptr(Bottom("Kilt"))})
	_, diags := Resolve(c)
	if len(diags) != 2 || diags[0].Field != "top" || diags[1].Field != "bottom" {
		t.Errorf("diagnostics = %v", diags)
	}
}
