package figurine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// cueStep is a single action in a cue script.
type cueStep struct {
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// cueScript is the top-level JSON structure for a cue script.
type cueScript struct {
	Steps []cueStep `json:"steps"`
}

// CueScript sequences presentation changes across frames, for scripted
// captures. Each step changes the running state and then emits its frames;
// a step with zero frames only changes the state.
//
// Actions:
//
//	expression, animation, pose, camera, background  set that field to value
//	capture   value parsed as a bool
//	talk      value is the script; frames default to the talk duration
//	hold      emit frames with the current state
type CueScript struct {
	steps []cueStep
}

// LoadCueScript parses a JSON cue script.
func LoadCueScript(jsonData []byte) (*CueScript, error) {
	var script cueScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse cue script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse cue script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "expression", "animation", "pose", "camera", "background", "hold":
		case "capture":
			if _, err := strconv.ParseBool(st.Value); err != nil {
				return nil, fmt.Errorf("parse cue script: step %d: capture value %q: %w", i, st.Value, err)
			}
		case "talk":
			if _, err := PlanTalk(st.Value, TimelineConfig{}); err != nil {
				return nil, fmt.Errorf("parse cue script: step %d: %w", i, err)
			}
		default:
			return nil, fmt.Errorf("parse cue script: step %d: unknown action %q", i, st.Action)
		}
		if st.Frames < 0 {
			return nil, fmt.Errorf("parse cue script: step %d: negative frames", i)
		}
	}
	return &CueScript{steps: script.Steps}, nil
}

// Len returns the number of steps.
func (s *CueScript) Len() int {
	return len(s.steps)
}

// Expand plays the script from base and returns one Frame per emitted frame,
// timed at cfg.FPS. Talk steps time their words with cfg.
func (s *CueScript) Expand(base PresentationState, cfg TimelineConfig) ([]Frame, error) {
	cfg = cfg.withDefaults()
	state := base
	var frames []Frame
	emit := func(st PresentationState, subtitle string) {
		i := len(frames)
		frames = append(frames, Frame{Index: i, Time: float64(i) / cfg.FPS, State: st, Subtitle: subtitle})
	}

	for i, st := range s.steps {
		switch st.Action {
		case "expression":
			state.Expression = ExpressionState(st.Value)
		case "animation":
			state.Animation = AnimationState(st.Value)
		case "pose":
			state.Pose = Pose(st.Value)
		case "camera":
			state.CameraView = CameraView(st.Value)
		case "background":
			state.Background = Background(st.Value)
		case "capture":
			on, err := strconv.ParseBool(st.Value)
			if err != nil {
				return nil, fmt.Errorf("expand cue step %d: %w", i, err)
			}
			state.CaptureMode = on
		case "talk":
			talk, err := PlanTalk(st.Value, cfg)
			if err != nil {
				return nil, fmt.Errorf("expand cue step %d: %w", i, err)
			}
			n := st.Frames
			if n == 0 {
				n = int(math.Ceil(talk.Duration * cfg.FPS))
			}
			talking := state
			talking.Expression = ExpressionTalking
			for f := 0; f < n; f++ {
				sub, ok := talk.SubtitleAt(float64(f) / cfg.FPS)
				if ok {
					emit(talking, sub)
				} else {
					emit(state, "")
				}
			}
			continue
		}
		for f := 0; f < st.Frames; f++ {
			emit(state, "")
		}
	}
	return frames, nil
}
