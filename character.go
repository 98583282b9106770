package figurine

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Trait enumerations. Each categorical trait is a distinct string type so a
// value cannot be passed to the wrong lookup table. Unrecognized values are
// legal at the type level and resolve to the family default.
type (
	Gender     string
	BodyType   string
	FaceShape  string
	Jawline    string
	Cheeks     string
	Chin       string
	Nose       string
	Lips       string
	EyeType    string
	HairType   string
	HairLength string
	Top        string
	Bottom     string
)

const (
	GenderFemale    Gender = "Female"
	GenderMale      Gender = "Male"
	GenderNonBinary Gender = "Non-binary"
)

const (
	BodySlim     BodyType = "Slim"
	BodyAthletic BodyType = "Athletic"
	BodyHeavy    BodyType = "Heavy"
	BodyBulky    BodyType = "Bulky"
)

const (
	FaceOval   FaceShape = "Oval"
	FaceRound  FaceShape = "Round"
	FaceSquare FaceShape = "Square"
	FaceHeart  FaceShape = "Heart"
	FaceLong   FaceShape = "Long"
)

const (
	JawDefined Jawline = "Defined"
	JawSoft    Jawline = "Soft"
	JawSquare  Jawline = "Square"
	JawRounded Jawline = "Rounded"
)

const (
	CheeksHigh   Cheeks = "High"
	CheeksFull   Cheeks = "Full"
	CheeksHollow Cheeks = "Hollow"
	CheeksFlat   Cheeks = "Flat"
)

const (
	ChinRounded   Chin = "Rounded"
	ChinSquare    Chin = "Square"
	ChinProminent Chin = "Prominent"
	ChinRecessed  Chin = "Recessed"
	ChinPointed   Chin = "Pointed"
	ChinCleft     Chin = "Cleft"
)

const (
	NoseStraight Nose = "Straight"
	NoseRoman    Nose = "Roman"
	NoseUpturned Nose = "Upturned"
	NoseButton   Nose = "Button"
	NoseAquiline Nose = "Aquiline"
)

const (
	LipsMedium    Lips = "Medium"
	LipsFull      Lips = "Full"
	LipsThin      Lips = "Thin"
	LipsBowShaped Lips = "Bow-shaped"
	LipsWide      Lips = "Wide"
)

const (
	EyesAlmond  EyeType = "Almond"
	EyesRound   EyeType = "Round"
	EyesHooded  EyeType = "Hooded"
	EyesMonolid EyeType = "Monolid"
	EyesGlowing EyeType = "Glowing"
	EyesReptile EyeType = "Reptile"
)

const (
	HairStraight HairType = "Straight"
	HairWavy     HairType = "Wavy"
	HairCurly    HairType = "Curly"
	HairCoily    HairType = "Coily"
	HairBald     HairType = "Bald"
)

const (
	HairShaved   HairLength = "Shaved"
	HairShort    HairLength = "Short"
	HairMedium   HairLength = "Medium"
	HairLong     HairLength = "Long"
	HairVeryLong HairLength = "Very Long"
)

const (
	TopNone   Top = "None"
	TopTShirt Top = "T-Shirt"
	TopShirt  Top = "Shirt"
	TopJacket Top = "Jacket"
	TopHoodie Top = "Hoodie"
)

const (
	BottomNone   Bottom = "None"
	BottomPants  Bottom = "Pants"
	BottomJeans  Bottom = "Jeans"
	BottomShorts Bottom = "Shorts"
	BottomSkirt  Bottom = "Skirt"
)

// SkinConditionNone is the sentinel condition. It never shares a set with
// any other condition.
const SkinConditionNone = "None"

// Declared numeric trait domains.
var (
	AgeRange    = Range{Min: 18, Max: 99}
	HeightRange = Range{Min: 140, Max: 220}
	WeightRange = Range{Min: 40, Max: 150}
)

// SkinConditions is a non-empty set of skin conditions kept in insertion
// order. Use Normalize or Toggle to obtain a value that honors the invariant.
type SkinConditions []string

// Normalize returns a copy that satisfies the invariant: duplicates and blanks
// removed, "None" dropped when another condition is present, and ["None"]
// when nothing remains.
func (s SkinConditions) Normalize() SkinConditions {
	out := make(SkinConditions, 0, len(s))
	for _, c := range s {
		if c == "" || c == SkinConditionNone || slices.Contains(out, c) {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return SkinConditions{SkinConditionNone}
	}
	return out
}

// Toggle returns the set after checking or unchecking one condition.
// Checking "None" clears every other condition; checking anything else drops
// "None"; unchecking the last condition falls back to ["None"].
func (s SkinConditions) Toggle(condition string, checked bool) SkinConditions {
	if checked {
		if condition == SkinConditionNone {
			return SkinConditions{SkinConditionNone}
		}
		next := slices.Clone(s)
		if !slices.Contains(next, condition) {
			next = append(next, condition)
		}
		return next.Normalize()
	}
	next := slices.DeleteFunc(slices.Clone(s), func(c string) bool { return c == condition })
	return next.Normalize()
}

// Valid reports whether the set already satisfies the invariant.
func (s SkinConditions) Valid() bool {
	if len(s) == 0 {
		return false
	}
	if slices.Contains(s, SkinConditionNone) {
		return len(s) == 1
	}
	return true
}

// Character describes a presenter's fixed appearance. It is a value: copies
// are independent, and changes are made by applying a CharacterPatch.
type Character struct {
	Gender          Gender         `json:"gender"`
	Age             float64        `json:"age"`
	Height          float64        `json:"height"`
	Weight          float64        `json:"weight"`
	BodyType        BodyType       `json:"bodyType"`
	FaceShape       FaceShape      `json:"faceShape"`
	Jawline         Jawline        `json:"jawline"`
	Cheeks          Cheeks         `json:"cheeks"`
	Chin            Chin           `json:"chin"`
	Nose            Nose           `json:"nose"`
	Lips            Lips           `json:"lips"`
	EyeColor        string         `json:"eyeColor"`
	EyeType         EyeType        `json:"eyeType"`
	SpecialEyes     string         `json:"specialEyes"`
	HairType        HairType       `json:"hairType"`
	HairLength      HairLength     `json:"hairLength"`
	HairColor       string         `json:"hairColor"`
	Beard           string         `json:"beard"`
	SkinTone        string         `json:"skinTone"`
	SkinMaterial    string         `json:"skinMaterial"`
	SkinConditions  SkinConditions `json:"skinConditions"`
	SurfacePatterns string         `json:"surfacePatterns"`
	Ears            string         `json:"ears"`
	Horns           string         `json:"horns"`
	Teeth           string         `json:"teeth"`
	Tongue          string         `json:"tongue"`
	Top             Top            `json:"top"`
	Bottom          Bottom         `json:"bottom"`
	ClothingColor   string         `json:"clothingColor"`
	ShowLogo        bool           `json:"showLogo"`
}

// DefaultCharacter returns the seeded presenter every new project starts with.
func DefaultCharacter() Character {
	return Character{
		Gender:          GenderFemale,
		Age:             28,
		Height:          175,
		Weight:          64,
		BodyType:        BodyAthletic,
		FaceShape:       FaceHeart,
		Jawline:         JawSoft,
		Cheeks:          CheeksHigh,
		Chin:            ChinPointed,
		Nose:            NoseUpturned,
		Lips:            LipsFull,
		EyeColor:        "Purple",
		EyeType:         EyesGlowing,
		SpecialEyes:     "None",
		HairType:        HairWavy,
		HairLength:      HairLong,
		HairColor:       "Pink",
		Beard:           "None",
		SkinTone:        "#E0AC93",
		SkinMaterial:    "Human",
		SkinConditions:  SkinConditions{"Freckles"},
		SurfacePatterns: "None",
		Ears:            "Elf",
		Horns:           "None",
		Teeth:           "Normal",
		Tongue:          "Normal",
		Top:             TopJacket,
		Bottom:          BottomPants,
		ClothingColor:   "#9D4EDD",
		ShowLogo:        true,
	}
}

// requiredFields lists the keys the pipeline cannot default, in the order
// they are reported.
var requiredFields = []string{
	"height", "weight", "bodyType", "faceShape", "jawline", "chin", "nose", "lips",
	"eyeColor", "eyeType", "hairType", "hairLength", "hairColor", "skinTone",
	"skinConditions", "top", "bottom", "clothingColor",
}

// empty reports whether a required field holds no value. Numeric traits are
// never empty: zero is a value and clamps like any other.
func (c Character) empty(field string) bool {
	switch field {
	case "height", "weight":
		return false
	case "bodyType":
		return c.BodyType == ""
	case "faceShape":
		return c.FaceShape == ""
	case "jawline":
		return c.Jawline == ""
	case "chin":
		return c.Chin == ""
	case "nose":
		return c.Nose == ""
	case "lips":
		return c.Lips == ""
	case "eyeColor":
		return c.EyeColor == ""
	case "eyeType":
		return c.EyeType == ""
	case "hairType":
		return c.HairType == ""
	case "hairLength":
		return c.HairLength == ""
	case "hairColor":
		return c.HairColor == ""
	case "skinTone":
		return c.SkinTone == ""
	case "skinConditions":
		return c.SkinConditions == nil
	case "top":
		return c.Top == ""
	case "bottom":
		return c.Bottom == ""
	case "clothingColor":
		return c.ClothingColor == ""
	}
	return false
}

// Validate checks that every field the pipeline reads is present. Empty
// strings and a nil SkinConditions set count as absent. It returns a
// *MissingFieldError listing all of them.
func (c Character) Validate() error {
	var missing []string
	for _, f := range requiredFields {
		if c.empty(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}

// DecodeCharacter parses a Character from JSON. A required key absent from
// the document is reported as missing alongside the fields Validate rejects,
// so an omitted height is told apart from an explicit zero. Unknown keys are
// ignored.
func DecodeCharacter(data []byte) (Character, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return Character{}, fmt.Errorf("decode character: %w", err)
	}
	var c Character
	if err := json.Unmarshal(data, &c); err != nil {
		return Character{}, fmt.Errorf("decode character: %w", err)
	}
	var missing []string
	for _, f := range requiredFields {
		if _, ok := keys[f]; !ok || c.empty(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return Character{}, &MissingFieldError{Fields: missing}
	}
	return c, nil
}

// normalizeConditions returns c with a canonical SkinConditions set and, when
// the set had to change, the diagnostic recording it.
func (c Character) normalizeConditions() (Character, []Diagnostic) {
	norm := c.SkinConditions.Normalize()
	if slices.Equal(norm, c.SkinConditions) {
		return c, nil
	}
	d := Diagnostic{
		Kind:     InvalidTraitValue,
		Field:    "skinConditions",
		Value:    strings.Join(c.SkinConditions, ","),
		Fallback: strings.Join(norm, ","),
	}
	c.SkinConditions = norm
	return c, []Diagnostic{d}
}

// CharacterPatch is a partial Character. Nil fields leave the target
// untouched.
type CharacterPatch struct {
	Gender          *Gender
	Age             *float64
	Height          *float64
	Weight          *float64
	BodyType        *BodyType
	FaceShape       *FaceShape
	Jawline         *Jawline
	Cheeks          *Cheeks
	Chin            *Chin
	Nose            *Nose
	Lips            *Lips
	EyeColor        *string
	EyeType         *EyeType
	SpecialEyes     *string
	HairType        *HairType
	HairLength      *HairLength
	HairColor       *string
	Beard           *string
	SkinTone        *string
	SkinMaterial    *string
	SkinConditions  SkinConditions
	SurfacePatterns *string
	Ears            *string
	Horns           *string
	Teeth           *string
	Tongue          *string
	Top             *Top
	Bottom          *Bottom
	ClothingColor   *string
	ShowLogo        *bool
}

// Apply returns the shallow merge of c and p. c is not modified; the result
// never shares the SkinConditions backing array with either input.
func (c Character) Apply(p CharacterPatch) Character {
	set(&c.Gender, p.Gender)
	set(&c.Age, p.Age)
	set(&c.Height, p.Height)
	set(&c.Weight, p.Weight)
	set(&c.BodyType, p.BodyType)
	set(&c.FaceShape, p.FaceShape)
	set(&c.Jawline, p.Jawline)
	set(&c.Cheeks, p.Cheeks)
	set(&c.Chin, p.Chin)
	set(&c.Nose, p.Nose)
	set(&c.Lips, p.Lips)
	set(&c.EyeColor, p.EyeColor)
	set(&c.EyeType, p.EyeType)
	set(&c.SpecialEyes, p.SpecialEyes)
	set(&c.HairType, p.HairType)
	set(&c.HairLength, p.HairLength)
	set(&c.HairColor, p.HairColor)
	set(&c.Beard, p.Beard)
	set(&c.SkinTone, p.SkinTone)
	set(&c.SkinMaterial, p.SkinMaterial)
	set(&c.SurfacePatterns, p.SurfacePatterns)
	set(&c.Ears, p.Ears)
	set(&c.Horns, p.Horns)
	set(&c.Teeth, p.Teeth)
	set(&c.Tongue, p.Tongue)
	set(&c.Top, p.Top)
	set(&c.Bottom, p.Bottom)
	set(&c.ClothingColor, p.ClothingColor)
	set(&c.ShowLogo, p.ShowLogo)
	if p.SkinConditions != nil {
		c.SkinConditions = p.SkinConditions.Normalize()
	} else if c.SkinConditions != nil {
		c.SkinConditions = c.SkinConditions.Normalize()
	}
	return c
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v. It keeps CharacterPatch literals short.
func Ptr[T any](v T) *T {
	return &v
}
