package figurine

import "strconv"

// Proportions is the normalized parameter set derived from a Character.
// Every builder reads from Proportions rather than from raw traits.
type Proportions struct {
	HeightFactor       float64 // height mapped onto [0, 1]
	WeightFactor       float64 // weight mapped onto [0, 1]
	BodyTypeMultiplier float64

	HeadScaleX, HeadScaleY float64
	JawFactor              float64
	ChinLength             float64
	NoseWidth, NoseHeight  float64
	LipsWidth, LipsHeight  float64
	HairLengthFactor       float64

	SkinColor     Color
	EyeColor      Color
	HairColor     Color
	ClothingColor Color
}

// traitTable maps one categorical trait family onto a parameter. Values
// absent from the table take the fallback and produce a diagnostic.
type traitTable[K ~string, V any] struct {
	field    string
	values   map[K]V
	fallback V
}

func (t traitTable[K, V]) lookup(k K, diags *[]Diagnostic) V {
	if v, ok := t.values[k]; ok {
		return v
	}
	*diags = append(*diags, Diagnostic{Kind: InvalidTraitValue, Field: t.field, Value: string(k), Fallback: "default"})
	return t.fallback
}

// dims is a width/height pair.
type dims struct{ w, h float64 }

var (
	bodyTypeTable = traitTable[BodyType, float64]{
		field: "bodyType",
		values: map[BodyType]float64{
			BodySlim:     0.8,
			BodyAthletic: 1.0,
			BodyHeavy:    1.2,
			BodyBulky:    1.3,
		},
		fallback: 1.0,
	}

	faceShapeTable = traitTable[FaceShape, Vec2]{
		field: "faceShape",
		values: map[FaceShape]Vec2{
			FaceSquare: {1.1, 1.05},
			FaceRound:  {1.1, 1.1},
			FaceHeart:  {1.1, 1.0},
			FaceLong:   {0.9, 1.15},
			FaceOval:   {1.0, 1.1},
		},
		fallback: Vec2{1.0, 1.1},
	}

	jawlineTable = traitTable[Jawline, float64]{
		field: "jawline",
		values: map[Jawline]float64{
			JawDefined: 0.7,
			JawSoft:    0.85,
			JawSquare:  0.9,
			JawRounded: 0.8,
		},
		fallback: 0.8,
	}

	chinTable = traitTable[Chin, float64]{
		field: "chin",
		values: map[Chin]float64{
			ChinRounded:   5,
			ChinSquare:    5,
			ChinCleft:     5,
			ChinProminent: 10,
			ChinRecessed:  2,
			ChinPointed:   8,
		},
		fallback: 5,
	}

	noseTable = traitTable[Nose, dims]{
		field: "nose",
		values: map[Nose]dims{
			NoseStraight: {4, 10},
			NoseAquiline: {4, 10},
			NoseRoman:    {4, 14},
			NoseUpturned: {4, 8},
			NoseButton:   {6, 6},
		},
		fallback: dims{4, 10},
	}

	lipsTable = traitTable[Lips, dims]{
		field: "lips",
		values: map[Lips]dims{
			LipsMedium:    {20, 4},
			LipsFull:      {20, 6},
			LipsThin:      {20, 2},
			LipsBowShaped: {18, 4},
			LipsWide:      {24, 4},
		},
		fallback: dims{20, 4},
	}

	hairLengthTable = traitTable[HairLength, float64]{
		field: "hairLength",
		values: map[HairLength]float64{
			HairShaved:   0,
			HairShort:    0.5,
			HairMedium:   0.8,
			HairLong:     1.2,
			HairVeryLong: 1.8,
		},
		fallback: 1.0,
	}
)

// Palette fallbacks for unparseable colors.
var (
	defaultSkinColor     = mustHex("#E0AC93")
	defaultEyeColor      = mustHex("#6B4423")
	defaultHairColor     = mustHex("#3B2A1A")
	defaultClothingColor = mustHex("#4A5568")
)

// Resolve maps a Character onto Proportions. It never fails: numeric traits
// outside their declared ranges are clamped and unknown categorical values
// take the family default, each recorded as a Diagnostic in a fixed order.
func Resolve(c Character) (Proportions, []Diagnostic) {
	var diags []Diagnostic
	var p Proportions

	checkRange("age", c.Age, AgeRange, &diags)
	p.HeightFactor = normalizeTrait("height", c.Height, HeightRange, &diags)
	p.WeightFactor = normalizeTrait("weight", c.Weight, WeightRange, &diags)
	p.BodyTypeMultiplier = bodyTypeTable.lookup(c.BodyType, &diags)

	face := faceShapeTable.lookup(c.FaceShape, &diags)
	p.HeadScaleX, p.HeadScaleY = face.X, face.Y
	p.JawFactor = jawlineTable.lookup(c.Jawline, &diags)
	p.ChinLength = chinTable.lookup(c.Chin, &diags)

	nose := noseTable.lookup(c.Nose, &diags)
	p.NoseWidth, p.NoseHeight = nose.w, nose.h
	lips := lipsTable.lookup(c.Lips, &diags)
	p.LipsWidth, p.LipsHeight = lips.w, lips.h

	if !knownEyeType(c.EyeType) {
		diags = append(diags, Diagnostic{Kind: InvalidTraitValue, Field: "eyeType", Value: string(c.EyeType), Fallback: "round iris"})
	}
	if !knownHairType(c.HairType) {
		diags = append(diags, Diagnostic{Kind: InvalidTraitValue, Field: "hairType", Value: string(c.HairType), Fallback: "curly"})
	}
	p.HairLengthFactor = hairLengthTable.lookup(c.HairLength, &diags)

	p.SkinColor = resolveColor("skinTone", c.SkinTone, defaultSkinColor, &diags)
	p.EyeColor = resolveColor("eyeColor", c.EyeColor, defaultEyeColor, &diags)
	p.HairColor = resolveColor("hairColor", c.HairColor, defaultHairColor, &diags)
	p.ClothingColor = resolveColor("clothingColor", c.ClothingColor, defaultClothingColor, &diags)

	if !knownTop(c.Top) {
		diags = append(diags, Diagnostic{Kind: InvalidTraitValue, Field: "top", Value: string(c.Top), Fallback: "no garment"})
	}
	if !knownBottom(c.Bottom) {
		diags = append(diags, Diagnostic{Kind: InvalidTraitValue, Field: "bottom", Value: string(c.Bottom), Fallback: "no garment"})
	}
	return p, diags
}

func normalizeTrait(field string, v float64, r Range, diags *[]Diagnostic) float64 {
	checkRange(field, v, r, diags)
	return r.Normalize(v)
}

// checkRange records a clamp diagnostic when v lies outside r. NaN is
// outside every range.
func checkRange(field string, v float64, r Range, diags *[]Diagnostic) {
	if r.Contains(v) {
		return
	}
	*diags = append(*diags, Diagnostic{
		Kind:     OutOfRangeNumericTrait,
		Field:    field,
		Value:    strconv.FormatFloat(v, 'f', -1, 64),
		Fallback: strconv.FormatFloat(r.Clamp(v), 'f', -1, 64),
	})
}

func resolveColor(field, v string, fallback Color, diags *[]Diagnostic) Color {
	if c, ok := ParseColor(v); ok {
		return c
	}
	*diags = append(*diags, Diagnostic{Kind: InvalidTraitValue, Field: field, Value: v, Fallback: fallback.Hex()})
	return fallback
}

func knownEyeType(e EyeType) bool {
	switch e {
	case EyesAlmond, EyesRound, EyesHooded, EyesMonolid, EyesGlowing, EyesReptile:
		return true
	}
	return false
}

func knownHairType(h HairType) bool {
	switch h {
	case HairStraight, HairWavy, HairCurly, HairCoily, HairBald:
		return true
	}
	return false
}

func knownTop(t Top) bool {
	switch t {
	case TopNone, TopTShirt, TopShirt, TopJacket, TopHoodie:
		return true
	}
	return false
}

func knownBottom(b Bottom) bool {
	switch b {
	case BottomNone, BottomPants, BottomJeans, BottomShorts, BottomSkirt:
		return true
	}
	return false
}
