package figurine

import (
	"errors"
	"math"
	"strings"
)

// ErrEmptyScript is returned by PlanTalk when the script has no words.
var ErrEmptyScript = errors.New("figurine: empty talk script")

// TimelineConfig controls frame sequencing. Zero fields take the defaults
// noted on each field.
type TimelineConfig struct {
	FPS      float64 // frames per second; default 25
	Duration float64 // sequence length in seconds; default 10

	// TalkOverride fixes the talk duration in seconds. Zero derives it from
	// the word count.
	TalkOverride     float64
	WordsPerSubtitle int     // default 5
	SecondsPerWord   float64 // default 0.4
}

const (
	defaultFPS              = 25
	defaultSequenceDuration = 10
	defaultWordsPerSubtitle = 5
	defaultSecondsPerWord   = 0.4
	minTalkDuration         = 1
)

func (c TimelineConfig) withDefaults() TimelineConfig {
	if c.FPS <= 0 {
		c.FPS = defaultFPS
	}
	if c.Duration <= 0 {
		c.Duration = defaultSequenceDuration
	}
	if c.WordsPerSubtitle <= 0 {
		c.WordsPerSubtitle = defaultWordsPerSubtitle
	}
	if c.SecondsPerWord <= 0 {
		c.SecondsPerWord = defaultSecondsPerWord
	}
	return c
}

// Talk is a planned speech: how long the mouth runs and which subtitle chunk
// shows when.
type Talk struct {
	Words     []string
	Duration  float64  // seconds
	Subtitles []string // chunks of WordsPerSubtitle words
	// ChunkDuration is the time each subtitle chunk stays on screen.
	ChunkDuration float64
}

// PlanTalk splits a script into subtitle chunks and times it. The duration is
// cfg.TalkOverride when set, otherwise max(1s, words*SecondsPerWord); the
// chunks share it evenly.
func PlanTalk(script string, cfg TimelineConfig) (Talk, error) {
	cfg = cfg.withDefaults()
	words := strings.Fields(script)
	if len(words) == 0 {
		return Talk{}, ErrEmptyScript
	}

	duration := cfg.TalkOverride
	if duration <= 0 {
		duration = math.Max(minTalkDuration, float64(len(words))*cfg.SecondsPerWord)
	}

	var chunks []string
	for i := 0; i < len(words); i += cfg.WordsPerSubtitle {
		end := min(i+cfg.WordsPerSubtitle, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}

	return Talk{
		Words:         words,
		Duration:      duration,
		Subtitles:     chunks,
		ChunkDuration: duration / float64(len(chunks)),
	}, nil
}

// SubtitleAt returns the chunk on screen at elapsed seconds into the talk.
// It reports false before the talk starts and once it has ended.
func (t Talk) SubtitleAt(elapsed float64) (string, bool) {
	if elapsed < 0 || elapsed >= t.Duration || len(t.Subtitles) == 0 {
		return "", false
	}
	i := int(elapsed / t.ChunkDuration)
	if i >= len(t.Subtitles) {
		i = len(t.Subtitles) - 1
	}
	return t.Subtitles[i], true
}

// Frame is one step of a rendered sequence.
type Frame struct {
	Index    int
	Time     float64 // logical seconds since the start of the sequence
	State    PresentationState
	Subtitle string
}

// Timeline lays out cfg.Duration seconds of frames at cfg.FPS. When script is
// non-blank a talk starts at time zero: frames inside it show the talking
// expression and the current subtitle, later frames go back to
// base.Expression. Every frame carries base.CaptureMode unchanged.
func Timeline(base PresentationState, script string, cfg TimelineConfig) ([]Frame, error) {
	cfg = cfg.withDefaults()
	var talk *Talk
	if strings.TrimSpace(script) != "" {
		t, err := PlanTalk(script, cfg)
		if err != nil {
			return nil, err
		}
		talk = &t
	}

	n := int(math.Round(cfg.Duration * cfg.FPS))
	frames := make([]Frame, 0, n)
	for i := 0; i < n; i++ {
		at := float64(i) / cfg.FPS
		f := Frame{Index: i, Time: at, State: base}
		if talk != nil {
			if sub, ok := talk.SubtitleAt(at); ok {
				f.State.Expression = ExpressionTalking
				f.Subtitle = sub
			}
		}
		frames = append(frames, f)
	}
	return frames, nil
}
