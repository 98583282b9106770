package figurine

// AnimationState selects the body animation loop set.
type AnimationState string

const (
	AnimationIdle     AnimationState = "idle"
	AnimationWalk     AnimationState = "walk"
	AnimationPointing AnimationState = "pointing"
)

// ExpressionState selects the mouth shape.
type ExpressionState string

const (
	ExpressionNeutral ExpressionState = "neutral"
	ExpressionSmile   ExpressionState = "smile"
	ExpressionSerious ExpressionState = "serious"
	ExpressionTalking ExpressionState = "talking"
)

// Pose selects the shear applied to the whole figure.
type Pose string

const (
	PoseFront Pose = "front"
	PoseLeft  Pose = "left"
	PoseRight Pose = "right"
)

// CameraView selects the viewport crop.
type CameraView string

const (
	CameraFull  CameraView = "full"
	CameraUpper CameraView = "upper"
)

// Background selects the scenery drawn beneath the figure.
type Background string

const (
	BackgroundPlainLight  Background = "plain-light"
	BackgroundPlainDark   Background = "plain-dark"
	BackgroundStudio      Background = "studio"
	BackgroundIndoor      Background = "indoor"
	BackgroundOutdoor     Background = "outdoor"
	BackgroundTransparent Background = "transparent"
)

// PresentationState holds the ephemeral render controls. It is recomputed by
// the caller for every frame or state change and never persisted here.
type PresentationState struct {
	Animation   AnimationState  `json:"animationState"`
	Expression  ExpressionState `json:"expressionState"`
	Pose        Pose            `json:"pose"`
	CameraView  CameraView      `json:"cameraView"`
	Background  Background      `json:"background"`
	CaptureMode bool            `json:"captureMode"`
}

// DefaultPresentationState returns the controls a new project starts with.
func DefaultPresentationState() PresentationState {
	return PresentationState{
		Animation:  AnimationIdle,
		Expression: ExpressionNeutral,
		Pose:       PoseFront,
		CameraView: CameraUpper,
		Background: BackgroundStudio,
	}
}

var (
	knownAnimations  = []AnimationState{AnimationIdle, AnimationWalk, AnimationPointing}
	knownExpressions = []ExpressionState{ExpressionNeutral, ExpressionSmile, ExpressionSerious, ExpressionTalking}
	knownPoses       = []Pose{PoseFront, PoseLeft, PoseRight}
	knownCameraViews = []CameraView{CameraFull, CameraUpper}
	knownBackgrounds = []Background{
		BackgroundPlainLight, BackgroundPlainDark, BackgroundStudio,
		BackgroundIndoor, BackgroundOutdoor, BackgroundTransparent,
	}
)

// Normalize replaces every field outside its domain with the field default
// (idle, neutral, front, full, transparent) and reports what it replaced.
func (s PresentationState) Normalize() (PresentationState, []Diagnostic) {
	var diags []Diagnostic
	s.Animation = oneOf("animationState", s.Animation, knownAnimations, AnimationIdle, &diags)
	s.Expression = oneOf("expressionState", s.Expression, knownExpressions, ExpressionNeutral, &diags)
	s.Pose = oneOf("pose", s.Pose, knownPoses, PoseFront, &diags)
	s.CameraView = oneOf("cameraView", s.CameraView, knownCameraViews, CameraFull, &diags)
	s.Background = oneOf("background", s.Background, knownBackgrounds, BackgroundTransparent, &diags)
	return s, diags
}

func oneOf[T ~string](field string, v T, known []T, fallback T, diags *[]Diagnostic) T {
	for _, k := range known {
		if v == k {
			return v
		}
	}
	*diags = append(*diags, Diagnostic{Kind: InvalidTraitValue, Field: field, Value: string(v), Fallback: string(fallback)})
	return fallback
}

// AspectRatio is an export frame shape such as "9:16".
type AspectRatio string

const (
	AspectPortrait  AspectRatio = "9:16"
	AspectSquare    AspectRatio = "1:1"
	AspectLandscape AspectRatio = "16:9"
)

// Value returns width/height. ok is false for an unrecognized ratio.
func (a AspectRatio) Value() (ratio float64, ok bool) {
	switch a {
	case AspectPortrait:
		return 9.0 / 16.0, true
	case AspectSquare:
		return 1, true
	case AspectLandscape:
		return 16.0 / 9.0, true
	default:
		return 0, false
	}
}

// Preset is a named bundle of framing choices.
type Preset string

const (
	PresetNone        Preset = ""
	PresetReel        Preset = "reel"
	PresetPromo       Preset = "promo"
	PresetTalkingHead Preset = "talking-head"
)

// ApplyPreset returns s with the preset's camera and background applied, and
// the aspect ratio the preset exports in. An unknown preset only sets the
// studio background and keeps the portrait ratio.
func ApplyPreset(s PresentationState, p Preset) (PresentationState, AspectRatio) {
	s.Background = BackgroundStudio
	switch p {
	case PresetReel:
		s.CameraView = CameraFull
		return s, AspectPortrait
	case PresetPromo:
		s.CameraView = CameraFull
		return s, AspectSquare
	case PresetTalkingHead:
		s.CameraView = CameraUpper
		return s, AspectPortrait
	default:
		return s, AspectPortrait
	}
}

// ActivePreset reports which preset the state and ratio currently match.
func ActivePreset(s PresentationState, a AspectRatio) Preset {
	if s.Background != BackgroundStudio {
		return PresetNone
	}
	switch {
	case a == AspectPortrait && s.CameraView == CameraFull:
		return PresetReel
	case a == AspectSquare && s.CameraView == CameraFull:
		return PresetPromo
	case a == AspectPortrait && s.CameraView == CameraUpper:
		return PresetTalkingHead
	default:
		return PresetNone
	}
}
