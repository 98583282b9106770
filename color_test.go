package figurine

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"#9D4EDD", "#9d4edd", true},
		{"#abc", "#aabbcc", true},
		{"  #E0AC93 ", "#e0ac93", true},
		{"Purple", "#800080", true},
		{"light blue", "#add8e6", true},
		{"PINK", "#ffc0cb", true},
		{"", "", false},
		{"#zzzzzz", "", false},
		{"rainbow", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok := ParseColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && c.Hex() != tt.want {
				t.Errorf("hex = %s, want %s", c.Hex(), tt.want)
			}
			if ok && c.A != 1 {
				t.Errorf("alpha = %v, want 1", c.A)
			}
		})
	}
}

func TestParseColorTransparent(t *testing.T) {
	c, ok := ParseColor("transparent")
	if !ok || c != ColorTransparent {
		t.Errorf("transparent = %v, %v", c, ok)
	}
}

func TestShade(t *testing.T) {
	base := mustHex("#9d4edd").WithAlpha(0.5)
	if got := Shade(base, 0); got.Hex() != "#9d4edd" {
		t.Errorf("zero shade = %s", got.Hex())
	}
	if got := Shade(base, 1); got.Hex() != "#000000" {
		t.Errorf("full shade = %s", got.Hex())
	}
	half := Shade(base, 0.5)
	if half.R+half.G+half.B >= base.R+base.G+base.B {
		t.Errorf("half shade %s not darker than %s", half.Hex(), base.Hex())
	}
	assertNear(t, "alpha kept", half.A, 0.5)
}

func TestColorHexClamps(t *testing.T) {
	if got := (Color{R: 2, G: -1, B: 0.5, A: 1}).Hex(); got != "#ff0080" {
		t.Errorf("hex = %s, want #ff0080", got)
	}
}

func TestOutlineOfIsOpaque(t *testing.T) {
	if got := outlineOf(ColorTransparent, outlineShade); got.A != 1 {
		t.Errorf("alpha = %v, want 1", got.A)
	}
	fill := mustHex("#9d4edd")
	if outlineOf(fill, seamShade) == outlineOf(fill, outlineShade) {
		t.Error("seam and outline shades match")
	}
}

func TestOutlinesFollowFill(t *testing.T) {
	purple := renderWith(t, CharacterPatch{})
	teal := renderWith(t, CharacterPatch{ClothingColor: Ptr("#008080"), SkinTone: Ptr("#8d5524")})

	for _, name := range []string{"top-torso", "left-pant-leg", "jacket-seam", "torso", "head", "nose"} {
		a, _ := purple.Find(name)
		b, _ := teal.Find(name)
		if a.Style.Stroke == b.Style.Stroke {
			t.Errorf("%s outline %s ignores the fill", name, a.Style.Stroke.Hex())
		}
	}
	top, _ := teal.Find("top-torso")
	if top.Style.Stroke != outlineOf(top.Style.Fill.Color, outlineShade) {
		t.Errorf("top outline = %s", top.Style.Stroke.Hex())
	}
	torso, _ := teal.Find("torso")
	if torso.Style.Stroke != outlineOf(mustHex("#8d5524"), outlineShade) {
		t.Errorf("torso outline = %s", torso.Style.Stroke.Hex())
	}
}
